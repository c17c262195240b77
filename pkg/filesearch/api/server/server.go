// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes a filesearch.Service over gRPC.
package server

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/filesearch-dev/filesearch/pkg/filesearch"
	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
)

const (
	DefaultListen  = ":50051"
	DefaultWorkers = 10
)

type Options struct {
	// Workers bounds the number of requests handled at the same time.
	Workers int
}

// FileSearcherServer adapts a filesearch.Service to the gRPC API.
type FileSearcherServer struct {
	api.UnimplementedFileSearcherServer
	svc *filesearch.Service
}

func (s *FileSearcherServer) SearchFiles(ctx context.Context, req *api.SearchRequest) (*api.SearchResponse, error) {
	res, err := s.svc.Handle(ctx, req)
	if err != nil {
		return nil, status.FromContextError(err).Err()
	}
	if res.HasError() {
		logrus.Infof("Rejected search for %q: %s", req.FilePattern, res.ErrorMessage)
	}
	return res, nil
}

func (s *FileSearcherServer) ListRoots(context.Context, *api.ListRootsRequest) (*api.ListRootsResponse, error) {
	return s.svc.Roots(), nil
}

type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// New creates a gRPC server for svc with the FileSearcher and health services registered.
func New(svc *filesearch.Service, opts Options) *Server {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	kaProps := keepalive.ServerParameters{
		Time:    10 * time.Second,
		Timeout: 20 * time.Second,
	}

	kaPolicy := keepalive.EnforcementPolicy{
		MinTime:             2 * time.Second,
		PermitWithoutStream: true,
	}

	gs := grpc.NewServer(
		grpc.KeepaliveParams(kaProps),
		grpc.KeepaliveEnforcementPolicy(kaPolicy),
		grpc.MaxConcurrentStreams(uint32(workers)*4),
		grpc.ChainUnaryInterceptor(
			loggingInterceptor,
			workerInterceptor(semaphore.NewWeighted(int64(workers))),
		),
	)
	api.RegisterFileSearcherServer(gs, &FileSearcherServer{svc: svc})

	hs := health.NewServer()
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)

	return &Server{grpc: gs, health: hs}
}

// Serve serves on lis until ctx is canceled, then stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)
	served := make(chan struct{})
	g.Go(func() error {
		defer close(served)
		logrus.Infof("Serving on %s", lis.Addr())
		if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			logrus.Info("Received shutdown signal, stopping server...")
			s.health.Shutdown()
			s.grpc.GracefulStop()
		case <-served:
		}
		return nil
	})
	return g.Wait()
}

// Stop stops the server immediately.
func (s *Server) Stop() {
	s.grpc.Stop()
}

func workerInterceptor(sem *semaphore.Weighted) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		defer sem.Release(1)
		return handler(ctx, req)
	}
}

func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	res, err := handler(ctx, req)
	code := codes.OK
	if err != nil {
		code = status.Code(err)
	}
	logrus.WithFields(logrus.Fields{
		"method":   info.FullMethod,
		"duration": time.Since(start),
		"code":     code,
	}).Debug("Handled request")
	return res, err
}
