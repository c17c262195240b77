// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/filesearch-dev/filesearch/pkg/config"
	"github.com/filesearch-dev/filesearch/pkg/sandbox"
)

func newRootsCommand() *cobra.Command {
	rootsCommand := &cobra.Command{
		Use:   "roots",
		Short: "Show the locations that can be searched",
		Args:  cobra.NoArgs,
		RunE:  rootsAction,
	}
	return rootsCommand
}

func rootsAction(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	table, err := resolveTable(cfg)
	if err != nil {
		return err
	}
	return printTable(cmd.OutOrStdout(), table)
}

// resolveTable resolves the known folders once, applying the configured overrides.
func resolveTable(cfg *config.Config) (*sandbox.Table, error) {
	overrides, err := cfg.RootOverrides()
	if err != nil {
		return nil, err
	}
	table := sandbox.Resolve(sandbox.DefaultProvider(), overrides)
	if table.Len() == 0 {
		logrus.Warn("No location could be resolved; every search will come back empty. Set `roots` in the configuration file.")
	}
	return table, nil
}

func printTable(out io.Writer, table *sandbox.Table) error {
	w := tabwriter.NewWriter(out, 4, 8, 4, ' ', 0)
	fmt.Fprintln(w, "KEY\tPATH")
	for _, e := range table.Entries() {
		fmt.Fprintf(w, "%s\t%s\n", e.Key, e.Path)
	}
	return w.Flush()
}
