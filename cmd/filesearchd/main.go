// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/filesearch-dev/filesearch/pkg/config"
	"github.com/filesearch-dev/filesearch/pkg/logrusutil"
	"github.com/filesearch-dev/filesearch/pkg/version"
)

func main() {
	if err := newApp().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filesearchd",
		Short: "filesearchd: sandboxed file search over gRPC",
		Example: `  Serve on the default port (50051):
  $ filesearchd serve

  Show the locations that can be searched:
  $ filesearchd roots`,
		Version:           strings.TrimPrefix(version.Version, "v"),
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	logrusutil.AddGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file (default: $"+config.EnvConfig+" or the user configuration directory)")
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return logrusutil.ProcessGlobalFlags(logrus.StandardLogger(), rootCmd.PersistentFlags())
	}
	rootCmd.AddCommand(
		newServeCommand(),
		newRootsCommand(),
	)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.LoadFile(path)
}
