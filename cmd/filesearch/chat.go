// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/filesearch-dev/filesearch/pkg/chat"
)

func newChatCommand() *cobra.Command {
	chatCommand := &cobra.Command{
		Use:   "chat",
		Short: "Start the interactive session (default)",
		Long: `Start the interactive session.

Each line is planned by the completion backend and turned into a search,
a file display, a direct answer, or a clarifying question.
Type "exit" or "quit" to stop.`,
		Args: cobra.NoArgs,
		RunE: chatAction,
	}
	return chatCommand
}

func chatAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := newClient(cmd, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	r, err := newRouter(cfg)
	if err != nil {
		return err
	}
	if err := c.CheckHealth(ctx); err != nil {
		logrus.WithError(err).Warnf("filesearchd at %s does not look healthy; searches may fail", c.Address())
	}

	session := chat.NewSession(r, c, cmd.OutOrStdout())
	session.ServerAddress = c.Address()
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		session.Interactive = chat.IsTerminal(f)
	}
	return session.Run(ctx, cmd.InOrStdin())
}
