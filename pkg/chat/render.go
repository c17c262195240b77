// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package chat

import (
	"fmt"
	"io"
	"strings"

	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
	"github.com/filesearch-dev/filesearch/pkg/show"
	"github.com/filesearch-dev/filesearch/pkg/textutil"
)

// MaxListed is the number of search results printed before the rest is summarized.
const MaxListed = 50

const NoFilesFound = "No files found for that criteria."

// RenderSearch prints a search response.
func RenderSearch(w io.Writer, res *api.SearchResponse) {
	if res.HasError() {
		fmt.Fprintf(w, "Server error: %s\n", res.ErrorMessage)
		return
	}
	total := len(res.FoundFiles)
	if total == 0 {
		fmt.Fprintln(w, NoFilesFound)
		return
	}
	listed := min(total, MaxListed)
	if listed < total {
		fmt.Fprintf(w, "Found %d %s (showing first %d):\n", total, textutil.Plural(total, "match", "matches"), listed)
	} else {
		fmt.Fprintf(w, "Found %d %s:\n", total, textutil.Plural(total, "match", "matches"))
	}
	for _, p := range res.FoundFiles[:listed] {
		fmt.Fprintf(w, "  - %s\n", p)
	}
	if listed < total {
		fmt.Fprintf(w, "  ... and %d more\n", total-listed)
	}
}

// RenderShow prints the outcome of a show request.
func RenderShow(w io.Writer, out *show.Outcome) {
	switch out.Status {
	case show.NotFound:
		fmt.Fprintf(w, "No file found matching the exact name %q.\n", out.FileName)
		if len(out.Hints) > 0 {
			fmt.Fprintln(w, "Did you mean one of these?")
			for _, p := range out.Hints {
				fmt.Fprintf(w, "  - %s\n", p)
			}
		}
	case show.Ambiguous:
		fmt.Fprintln(w, "Multiple files matched that name; narrow it down with a location or a different name:")
		for _, p := range out.Matches {
			fmt.Fprintf(w, "  - %s\n", p)
		}
		if out.More > 0 {
			fmt.Fprintf(w, "  ... and %d more\n", out.More)
		}
	case show.Found:
		fmt.Fprintf(w, "Showing full content of: %s\n", out.Path)
		if out.ReadErr != nil {
			fmt.Fprintf(w, "Failed to read file: %v\n", out.ReadErr)
			return
		}
		fmt.Fprintf(w, "Size: %d %s\n", out.Size, textutil.Plural(int(out.Size), "byte", "bytes"))
		fmt.Fprintln(w, "--- BEGIN FILE ---")
		fmt.Fprint(w, out.Content)
		if !strings.HasSuffix(out.Content, "\n") {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "--- END FILE ---")
		if out.Truncated {
			fmt.Fprintf(w, "(truncated to the first %d bytes)\n", show.MaxReadSize)
		}
	}
}
