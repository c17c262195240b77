// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package client is the gRPC client of filesearchd.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
)

const DefaultAddress = "localhost:50051"

type Client struct {
	address string
	conn    *grpc.ClientConn
	svc     api.FileSearcherClient
	health  healthpb.HealthClient
	// timeout is applied to every call when positive.
	timeout time.Duration
}

var _ api.Searcher = (*Client)(nil)

// New creates a client for address. No connection is made until the first call.
// opts are appended to the default dial options.
func New(address string, timeout time.Duration, opts ...grpc.DialOption) (*Client, error) {
	if address == "" {
		address = DefaultAddress
	}
	dialOpts := append([]grpc.DialOption{
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(16 << 20)),
		grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(16 << 20)),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client for %q: %w", address, err)
	}
	return &Client{
		address: address,
		conn:    conn,
		svc:     api.NewFileSearcherClient(conn),
		health:  healthpb.NewHealthClient(conn),
		timeout: timeout,
	}, nil
}

// Address returns the target the client was created for.
func (c *Client) Address() string {
	return c.address
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

func (c *Client) SearchFiles(ctx context.Context, req *api.SearchRequest) (*api.SearchResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	logrus.Debugf("SearchFiles(pattern=%q, key=%q, hidden=%v)", req.FilePattern, req.GetBasePathKey(), req.IncludeHidden)
	return c.svc.SearchFiles(ctx, req)
}

func (c *Client) ListRoots(ctx context.Context, req *api.ListRootsRequest) (*api.ListRootsResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.svc.ListRoots(ctx, req)
}

// CheckHealth returns nil when the daemon reports SERVING for the FileSearcher service.
func (c *Client) CheckHealth(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	res, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return err
	}
	if st := res.GetStatus(); st != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%s is %s", api.ServiceName, st)
	}
	return nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
