// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/filesearch-dev/filesearch/pkg/config"
	"github.com/filesearch-dev/filesearch/pkg/filesearch/api/client"
	"github.com/filesearch-dev/filesearch/pkg/llm"
	"github.com/filesearch-dev/filesearch/pkg/logrusutil"
	"github.com/filesearch-dev/filesearch/pkg/router"
	"github.com/filesearch-dev/filesearch/pkg/version"
)

func main() {
	if err := newApp().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filesearch",
		Short: "filesearch: find and show files by asking in plain language",
		Example: `  Start the interactive session:
  $ filesearch

  Search directly, without the planner:
  $ filesearch search '*.pdf' --in downloads

  Print the plan for a query:
  $ filesearch plan show README.md from docs`,
		Args:              cobra.NoArgs,
		RunE:              chatAction,
		Version:           strings.TrimPrefix(version.Version, "v"),
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	logrusutil.AddGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file (default: $"+config.EnvConfig+" or the user configuration directory)")
	rootCmd.PersistentFlags().String("address", "", "Address of filesearchd (default: client.address from the configuration, \""+client.DefaultAddress+"\")")
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return logrusutil.ProcessGlobalFlags(logrus.StandardLogger(), rootCmd.PersistentFlags())
	}
	rootCmd.AddCommand(
		newChatCommand(),
		newSearchCommand(),
		newShowCommand(),
		newPlanCommand(),
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

func newClient(cmd *cobra.Command, cfg *config.Config) (*client.Client, error) {
	address := *cfg.Client.Address
	if cmd.Flags().Changed("address") {
		var err error
		if address, err = cmd.Flags().GetString("address"); err != nil {
			return nil, err
		}
	}
	return client.New(address, cfg.ClientTimeout())
}

func newRouter(cfg *config.Config) (*router.Router, error) {
	completer, err := llm.New(cfg.LLMOptions())
	if err != nil {
		return nil, err
	}
	return router.New(completer), nil
}

// addLocationFlags adds the flags shared by search and show.
func addLocationFlags(cmd *cobra.Command) {
	cmd.Flags().String("in", "", "Location key to search in: docs, downloads, desktop, pictures, videos or music (default: all)")
	cmd.Flags().Bool("hidden", false, "Include hidden files and folders")
}

func locationFlags(cmd *cobra.Command) (string, bool, error) {
	key, err := cmd.Flags().GetString("in")
	if err != nil {
		return "", false, err
	}
	hidden, err := cmd.Flags().GetBool("hidden")
	if err != nil {
		return "", false, err
	}
	return key, hidden, nil
}
