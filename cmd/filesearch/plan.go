// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filesearch-dev/filesearch/pkg/router"
)

func newPlanCommand() *cobra.Command {
	planCommand := &cobra.Command{
		Use:     "plan QUERY...",
		Short:   "Print the validated plan for a query, without running it",
		Example: `  $ filesearch plan find all python files in docs`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    planAction,
	}
	return planCommand
}

func planAction(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := newRouter(cfg)
	if err != nil {
		return err
	}
	action, err := r.Route(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	b, err := router.Marshal(action)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
