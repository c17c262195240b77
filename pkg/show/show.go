// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package show finds a single file by its exact name and reads it.
package show

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
	"github.com/filesearch-dev/filesearch/pkg/ioutilx"
	"github.com/filesearch-dev/filesearch/pkg/ptr"
	"github.com/filesearch-dev/filesearch/pkg/search"
)

const (
	MaxHints   = 10
	MaxMatches = 20
	// MaxReadSize is the maximum number of bytes read from a shown file.
	MaxReadSize = 32 << 20
)

type Status int

const (
	NotFound Status = iota
	Found
	Ambiguous
)

func (s Status) String() string {
	switch s {
	case NotFound:
		return "not-found"
	case Found:
		return "found"
	case Ambiguous:
		return "ambiguous"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of Resolver.Show.
type Outcome struct {
	FileName string
	Status   Status

	// Hints are loose candidates when nothing matched exactly.
	Hints []string

	// Matches are the first MaxMatches exact matches when there are several;
	// More counts the rest.
	Matches []string
	More    int

	// Path, Size, Content and Truncated describe the file that was found.
	// ReadErr is set when it could not be read.
	Path      string
	Size      int64
	Content   string
	Truncated bool
	ReadErr   error
}

// SearchError is an error reported by the search service for a well-formed call.
type SearchError struct {
	Message string
}

func (e *SearchError) Error() string {
	return e.Message
}

type Resolver struct {
	searcher api.Searcher
}

func NewResolver(searcher api.Searcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Show searches fileName under locationKey ("" for every location) and reads
// it when exactly one entry has that base name, ignoring case.
func (r *Resolver) Show(ctx context.Context, fileName, locationKey string, includeHidden bool) (*Outcome, error) {
	res, err := r.searcher.SearchFiles(ctx, &api.SearchRequest{
		FilePattern:   fileName,
		BasePathKey:   ptr.NonZero(locationKey),
		IncludeHidden: includeHidden,
	})
	if err != nil {
		return nil, err
	}
	if res.HasError() {
		return nil, &SearchError{Message: res.ErrorMessage}
	}

	out := &Outcome{FileName: fileName}
	exact := ExactMatches(res.FoundFiles, fileName)
	switch len(exact) {
	case 0:
		out.Status = NotFound
		out.Hints = head(res.FoundFiles, MaxHints)
	case 1:
		out.Status = Found
		out.Path = exact[0]
		out.Content, out.Size, out.Truncated, out.ReadErr = ReadFile(exact[0], MaxReadSize)
	default:
		out.Status = Ambiguous
		out.Matches = head(exact, MaxMatches)
		out.More = len(exact) - len(out.Matches)
	}
	return out, nil
}

// ExactMatches returns the paths whose base name equals fileName, ignoring
// case the same way the search does.
func ExactMatches(paths []string, fileName string) []string {
	want := search.Fold(fileName)
	var res []string
	for _, p := range paths {
		if search.Fold(filepath.Base(p)) == want {
			res = append(res, p)
		}
	}
	return res
}

func head(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	return append([]string(nil), s...)
}

// ReadFile reads at most limit bytes of path as text.
// UTF-16 files with a byte order mark are decoded; invalid UTF-8 is replaced.
// size is the size of the file on disk.
func ReadFile(path string, limit int64) (content string, size int64, truncated bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, false, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return "", 0, false, err
	}
	if st.IsDir() {
		return "", st.Size(), false, fmt.Errorf("%q is a directory", path)
	}
	b, truncated, err := ioutilx.ReadAtMaximum(f, limit)
	if err != nil {
		return "", st.Size(), false, err
	}
	return ioutilx.DecodeText(b), st.Size(), truncated, nil
}
