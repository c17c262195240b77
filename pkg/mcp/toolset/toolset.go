// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolset implements the tools of package msi on top of a searcher.
package toolset

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
	"github.com/filesearch-dev/filesearch/pkg/mcp/msi"
	"github.com/filesearch-dev/filesearch/pkg/router"
	"github.com/filesearch-dev/filesearch/pkg/show"
)

type ToolSet struct {
	searcher api.Searcher
	resolver *show.Resolver
}

func New(searcher api.Searcher) *ToolSet {
	return &ToolSet{
		searcher: searcher,
		resolver: show.NewResolver(searcher),
	}
}

func (ts *ToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, msi.SearchFiles, ts.SearchFiles)
	mcp.AddTool(server, msi.ShowFile, ts.ShowFile)
	mcp.AddTool(server, msi.ListLocations, ts.ListLocations)
	return nil
}

func (ts *ToolSet) SearchFiles(ctx context.Context,
	_ *mcp.CallToolRequest, args msi.SearchFilesParams,
) (*mcp.CallToolResult, *msi.SearchFilesResult, error) {
	res, err := ts.searcher.SearchFiles(ctx, &api.SearchRequest{
		FilePattern:   args.FilePattern,
		BasePathKey:   args.BasePathKey,
		IncludeHidden: args.IncludeHidden,
	})
	if err != nil {
		return nil, nil, err
	}
	if res.HasError() {
		return nil, nil, errors.New(res.ErrorMessage)
	}
	out := &msi.SearchFilesResult{FoundFiles: res.FoundFiles}
	if out.FoundFiles == nil {
		out.FoundFiles = []string{}
	}
	return &mcp.CallToolResult{
		StructuredContent: out,
	}, out, nil
}

func (ts *ToolSet) ShowFile(ctx context.Context,
	_ *mcp.CallToolRequest, args msi.ShowFileParams,
) (*mcp.CallToolResult, *msi.ShowFileResult, error) {
	if !router.IsSimpleFileName(args.FileName) {
		return nil, nil, errors.New("file_name must be an exact file name, without directories or wildcards")
	}
	var key string
	if args.BasePathKey != nil {
		key = *args.BasePathKey
	}
	o, err := ts.resolver.Show(ctx, args.FileName, key, args.IncludeHidden)
	if err != nil {
		return nil, nil, err
	}
	out := &msi.ShowFileResult{Status: o.Status.String()}
	switch o.Status {
	case show.NotFound:
		out.Candidates = o.Hints
	case show.Ambiguous:
		out.Candidates = o.Matches
		out.More = o.More
	case show.Found:
		if o.ReadErr != nil {
			return nil, nil, o.ReadErr
		}
		out.Path = o.Path
		out.Size = o.Size
		out.Content = o.Content
		out.Truncated = o.Truncated
	}
	return &mcp.CallToolResult{
		StructuredContent: out,
	}, out, nil
}

func (ts *ToolSet) ListLocations(ctx context.Context,
	_ *mcp.CallToolRequest, _ msi.ListLocationsParams,
) (*mcp.CallToolResult, *msi.ListLocationsResult, error) {
	res, err := ts.searcher.ListRoots(ctx, &api.ListRootsRequest{})
	if err != nil {
		return nil, nil, err
	}
	out := &msi.ListLocationsResult{Locations: make([]msi.Location, len(res.Roots))}
	for i, r := range res.Roots {
		out.Locations[i] = msi.Location{Key: r.Key, Path: r.Path}
	}
	return &mcp.CallToolResult{
		StructuredContent: out,
	}, out, nil
}
