// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/filesearch-dev/filesearch/pkg/config"
	"github.com/filesearch-dev/filesearch/pkg/filesearch"
	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
	"github.com/filesearch-dev/filesearch/pkg/filesearch/api/client"
	"github.com/filesearch-dev/filesearch/pkg/logrusutil"
	"github.com/filesearch-dev/filesearch/pkg/mcp/toolset"
	"github.com/filesearch-dev/filesearch/pkg/sandbox"
	"github.com/filesearch-dev/filesearch/pkg/version"
)

func main() {
	if err := newApp().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "filesearch-mcp",
		Short:         "Model Context Protocol server for filesearch",
		Version:       strings.TrimPrefix(version.Version, "v"),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	logrusutil.AddGlobalFlags(cmd.PersistentFlags())
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return logrusutil.ProcessGlobalFlags(logrus.StandardLogger(), cmd.PersistentFlags())
	}
	cmd.AddCommand(
		newMcpInfoCommand(),
		newMcpServeCommand(),
		newMcpGenDocCommand(),
	)
	return cmd
}

func newServer() *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "filesearch",
		Title:   "filesearch, for finding and reading files in the user's well-known folders",
		Version: version.Version,
	}
	serverOpts := &mcp.ServerOptions{
		Instructions: `This MCP server provides tools for finding files and folders by name, and for reading a single file by its exact name.

Only the user's well-known folders can be searched. Call list_locations to see them.
Locations are named by key (docs, downloads, desktop, pictures, videos, music), never by path.
`,
	}
	serverOpts.Instructions += fmt.Sprintf(`
The host OS is %s. File names are compared without regard to case.
`, cases.Title(language.English).String(runtime.GOOS))
	return mcp.NewServer(impl, serverOpts)
}

func newMcpInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show information about the MCP server",
		Args:  cobra.NoArgs,
		RunE:  mcpInfoAction,
	}
	return cmd
}

func mcpInfoAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	j, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(j))
	return err
}

func inspectInfo(ctx context.Context) (*Info, error) {
	ts := toolset.New(filesearch.New(sandbox.NewTable()))
	server := newServer()
	if err := ts.RegisterServer(server); err != nil {
		return nil, err
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, err
	}
	toolsResult, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	if err = clientSession.Close(); err != nil {
		return nil, err
	}
	if err = serverSession.Wait(); err != nil {
		return nil, err
	}
	info := &Info{
		Tools: toolsResult.Tools,
	}
	return info, nil
}

type Info struct {
	Tools []*mcp.Tool `json:"tools"`
}

func newMcpServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		Long: `Serve MCP over stdio.

By default the locations are resolved and searched in-process.
With --address, the searches are forwarded to a running filesearchd instead.

Expected to be executed via an AI agent, not by a human`,
		Args: cobra.NoArgs,
		RunE: mcpServeAction,
	}
	cmd.Flags().String("config", "", "Path to the configuration file")
	cmd.Flags().String("address", "", "Forward the searches to filesearchd at this address")
	return cmd
}

func mcpServeAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	address, err := cmd.Flags().GetString("address")
	if err != nil {
		return err
	}

	var searcher api.Searcher
	if address != "" {
		c, err := client.New(address, cfg.ClientTimeout())
		if err != nil {
			return err
		}
		defer c.Close()
		searcher = c
	} else {
		overrides, err := cfg.RootOverrides()
		if err != nil {
			return err
		}
		table := sandbox.Resolve(sandbox.DefaultProvider(), overrides)
		if table.Len() == 0 {
			logrus.Warn("No location could be resolved; every search will come back empty")
		}
		searcher = filesearch.New(table)
	}

	ts := toolset.New(searcher)
	server := newServer()
	if err = ts.RegisterServer(server); err != nil {
		return err
	}
	transport := &mcp.StdioTransport{}
	return server.Run(ctx, transport)
}

func newMcpGenDocCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "generate-doc DIR",
		Short:  "Generate documentation pages",
		Args:   cobra.MinimumNArgs(1),
		RunE:   mcpGenDocAction,
		Hidden: true,
	}
	return cmd
}

func mcpGenDocAction(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	fName := filepath.Join(dir, "mcp.md")
	f, err := os.Create(fName)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprint(f, `---
title: MCP tools
weight: 99
---
filesearch implements the "MCP Search Interface":
https://pkg.go.dev/github.com/filesearch-dev/filesearch/pkg/mcp/msi

The tools find files and folders by name within the user's well-known
folders, and read a single file by its exact name. Locations are always
named by key, so an agent can never reach an arbitrary path.

`)
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	for _, tool := range info.Tools {
		fmt.Fprintf(f, "## `%s`\n\n", tool.Name)
		if tool.Title != "" {
			fmt.Fprintf(f, "### Title\n\n%s\n\n", tool.Title)
		}
		if tool.Description != "" {
			fmt.Fprintf(f, "### Description\n\n%s\n\n", tool.Description)
		}
		if tool.InputSchema != nil {
			fmt.Fprint(f, "### Input Schema\n\n")
			schema, err := json.MarshalIndent(tool.InputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
		if tool.OutputSchema != nil {
			fmt.Fprint(f, "### Output Schema\n\n")
			schema, err := json.MarshalIndent(tool.OutputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
	}
	return f.Close()
}
