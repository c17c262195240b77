// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package msi

import "github.com/modelcontextprotocol/go-sdk/mcp"

var SearchFiles = &mcp.Tool{
	Name:  "search_files",
	Title: "Search files",
	Description: `Finds files and folders whose name matches a glob pattern (e.g., *.py, report.*, notes.txt), ignoring case.
Hidden entries (names starting with '.') are skipped unless include_hidden is true.`,
}

type SearchFilesParams struct {
	FilePattern   string  `json:"file_pattern" jsonschema:"Glob or file name to match against entry names (e.g., '*.py', 'report.*', 'notes.txt'). Must not contain '..' or start with a path separator."`
	BasePathKey   *string `json:"base_path_key,omitempty" jsonschema:"Restrict the search to one location: docs, downloads, desktop, pictures, videos or music. If omitted, every allowed location is searched."`
	IncludeHidden bool    `json:"include_hidden,omitempty" jsonschema:"Include hidden files and folders."`
}

type SearchFilesResult struct {
	FoundFiles []string `json:"found_files" jsonschema:"Absolute paths of the matching files and folders, in traversal order."`
}

var ListLocations = &mcp.Tool{
	Name:        "list_locations",
	Title:       "List locations",
	Description: `Lists the location keys that can be searched, with their directories.`,
}

type ListLocationsParams struct{}

type Location struct {
	Key  string `json:"key" jsonschema:"The location key, to be used as base_path_key."`
	Path string `json:"path" jsonschema:"The absolute directory of the location."`
}

type ListLocationsResult struct {
	Locations []Location `json:"locations" jsonschema:"The allowed locations."`
}
