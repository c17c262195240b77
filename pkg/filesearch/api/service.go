// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// ServiceName is the fully-qualified gRPC service name, also used for health checks.
	ServiceName = "filesearch.v1.FileSearcher"

	SearchFilesMethod = "/" + ServiceName + "/SearchFiles"
	ListRootsMethod   = "/" + ServiceName + "/ListRoots"
)

// FileSearcherServer is the server API for the FileSearcher service.
type FileSearcherServer interface {
	SearchFiles(context.Context, *SearchRequest) (*SearchResponse, error)
	ListRoots(context.Context, *ListRootsRequest) (*ListRootsResponse, error)
}

// UnimplementedFileSearcherServer can be embedded to have forward compatible implementations.
type UnimplementedFileSearcherServer struct{}

func (UnimplementedFileSearcherServer) SearchFiles(context.Context, *SearchRequest) (*SearchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchFiles not implemented")
}

func (UnimplementedFileSearcherServer) ListRoots(context.Context, *ListRootsRequest) (*ListRootsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRoots not implemented")
}

// RegisterFileSearcherServer registers srv on s.
func RegisterFileSearcherServer(s grpc.ServiceRegistrar, srv FileSearcherServer) {
	s.RegisterService(&FileSearcherServiceDesc, srv)
}

func searchFilesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileSearcherServer).SearchFiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SearchFilesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FileSearcherServer).SearchFiles(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listRootsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRootsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileSearcherServer).ListRoots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListRootsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FileSearcherServer).ListRoots(ctx, req.(*ListRootsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FileSearcherServiceDesc is the grpc.ServiceDesc for the FileSearcher service.
var FileSearcherServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FileSearcherServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchFiles", Handler: searchFilesHandler},
		{MethodName: "ListRoots", Handler: listRootsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "filesearch/v1/filesearch.proto",
}

// FileSearcherClient is the client API for the FileSearcher service.
type FileSearcherClient interface {
	SearchFiles(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
	ListRoots(ctx context.Context, in *ListRootsRequest, opts ...grpc.CallOption) (*ListRootsResponse, error)
}

type fileSearcherClient struct {
	cc grpc.ClientConnInterface
}

// NewFileSearcherClient returns a client stub that encodes messages with the JSON codec.
func NewFileSearcherClient(cc grpc.ClientConnInterface) FileSearcherClient {
	return &fileSearcherClient{cc: cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *fileSearcherClient) SearchFiles(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	out := new(SearchResponse)
	if err := c.cc.Invoke(ctx, SearchFilesMethod, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileSearcherClient) ListRoots(ctx context.Context, in *ListRootsRequest, opts ...grpc.CallOption) (*ListRootsResponse, error) {
	out := new(ListRootsResponse)
	if err := c.cc.Invoke(ctx, ListRootsMethod, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
