// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package msi

import "github.com/modelcontextprotocol/go-sdk/mcp"

var ShowFile = &mcp.Tool{
	Name:  "show_file",
	Title: "Show file",
	Description: `Reads the file with the given exact name (no wildcards, no directories).
When no file or several files have that name, nothing is read and the candidates are returned instead.`,
}

type ShowFileParams struct {
	FileName      string  `json:"file_name" jsonschema:"The exact file name, e.g. 'README.md'. Compared without regard to case."`
	BasePathKey   *string `json:"base_path_key,omitempty" jsonschema:"Restrict the lookup to one location: docs, downloads, desktop, pictures, videos or music."`
	IncludeHidden bool    `json:"include_hidden,omitempty" jsonschema:"Include hidden files and folders."`
}

type ShowFileResult struct {
	Status     string   `json:"status" jsonschema:"One of 'found', 'not-found' or 'ambiguous'."`
	Path       string   `json:"path,omitempty" jsonschema:"The path of the file that was read."`
	Size       int64    `json:"size,omitempty" jsonschema:"The size of the file in bytes."`
	Content    string   `json:"content,omitempty" jsonschema:"The content of the file, with invalid UTF-8 replaced."`
	Truncated  bool     `json:"truncated,omitempty" jsonschema:"True when only the first 32 MiB were read."`
	Candidates []string `json:"candidates,omitempty" jsonschema:"Similar paths when not found, or the matching paths when ambiguous."`
	More       int      `json:"more,omitempty" jsonschema:"The number of further matching paths not listed in candidates."`
}
