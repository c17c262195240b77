// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/filesearch-dev/filesearch/pkg/chat"
)

func newSearchCommand() *cobra.Command {
	searchCommand := &cobra.Command{
		Use:   "search PATTERN",
		Short: "Search files and folders by glob pattern",
		Example: `  $ filesearch search '*.py' --in docs
  $ filesearch search 'report.*'`,
		Args: cobra.ExactArgs(1),
		RunE: searchAction,
	}
	addLocationFlags(searchCommand)
	return searchCommand
}

func searchAction(cmd *cobra.Command, args []string) error {
	key, hidden, err := locationFlags(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := newClient(cmd, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	return chat.NewSession(nil, c, cmd.OutOrStdout()).Search(cmd.Context(), args[0], key, hidden)
}

func newShowCommand() *cobra.Command {
	showCommand := &cobra.Command{
		Use:     "show NAME",
		Short:   "Show the content of the file with the given exact name",
		Example: `  $ filesearch show README.md --in docs`,
		Args:    cobra.ExactArgs(1),
		RunE:    showAction,
	}
	addLocationFlags(showCommand)
	return showCommand
}

func showAction(cmd *cobra.Command, args []string) error {
	key, hidden, err := locationFlags(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := newClient(cmd, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	return chat.NewSession(nil, c, cmd.OutOrStdout()).Show(cmd.Context(), args[0], key, hidden)
}
