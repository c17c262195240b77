// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
)

func newRootsCommand() *cobra.Command {
	rootsCommand := &cobra.Command{
		Use:   "roots",
		Short: "List the locations filesearchd can search",
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
	c, err := newClient(cmd, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	res, err := c.ListRoots(cmd.Context(), &api.ListRootsRequest{})
	if err != nil {
		return err
	}
	if len(res.Roots) == 0 {
		logrus.Warnf("filesearchd at %s has no location to search", c.Address())
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 4, 8, 4, ' ', 0)
	fmt.Fprintln(w, "KEY\tPATH")
	for _, r := range res.Roots {
		fmt.Fprintf(w, "%s\t%s\n", r.Key, r.Path)
	}
	return w.Flush()
}
