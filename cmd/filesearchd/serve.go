// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/filesearch-dev/filesearch/pkg/filesearch"
	"github.com/filesearch-dev/filesearch/pkg/filesearch/api/server"
)

func newServeCommand() *cobra.Command {
	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Serve the FileSearcher gRPC service",
		Args:  cobra.NoArgs,
		RunE:  serveAction,
	}
	serveCommand.Flags().String("listen", "", "Address to listen on (default: server.listen from the configuration, \""+server.DefaultListen+"\")")
	serveCommand.Flags().Int("workers", 0, "Number of requests handled concurrently (default: server.workers from the configuration)")
	return serveCommand
}

func serveAction(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	listen := *cfg.Server.Listen
	if cmd.Flags().Changed("listen") {
		if listen, err = cmd.Flags().GetString("listen"); err != nil {
			return err
		}
	}
	workers := *cfg.Server.Workers
	if cmd.Flags().Changed("workers") {
		if workers, err = cmd.Flags().GetInt("workers"); err != nil {
			return err
		}
		if workers <= 0 {
			return fmt.Errorf("--workers must be positive, got %d", workers)
		}
	}

	table, err := resolveTable(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Allowed locations:")
	if err := printTable(cmd.OutOrStdout(), table); err != nil {
		return err
	}

	lis, err := net.Listen("tcp", listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", listen, err)
	}
	srv := server.New(filesearch.New(table), server.Options{Workers: workers})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logrus.Infof("Handling up to %d requests concurrently", workers)
	return srv.Serve(ctx, lis)
}
