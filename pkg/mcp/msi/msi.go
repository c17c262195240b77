// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package msi provides the "MCP Search Interface": MCP (Model Context
// Protocol) tools for finding and reading files within a fixed set of
// user locations.
//
// Unlike generic file system tools, the tools never accept a path.
// A location is always named by its key (docs, downloads, desktop,
// pictures, videos, music), and patterns that could escape a location
// are rejected.
//
// The output format is JSON, not plain text.
package msi
