// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package search walks sandbox roots and collects the entries whose names
// match a glob pattern.
package search

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/filesearch-dev/filesearch/pkg/sandbox"
)

// IsHidden reports whether name is a dot file or a dot directory.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// subtree is the outcome of walking one directory: the matches found below
// it, and the error that cut the walk of that directory short, if any.
// The error is never propagated to the parent, only logged.
type subtree struct {
	matches []string
	err     error
}

type walker struct {
	ctx           context.Context
	matcher       *Matcher
	includeHidden bool
}

// Search walks root depth-first and returns the paths of all files and
// directories whose name matches pattern, in traversal order.
//
// Hidden entries are skipped unless includeHidden is set; hidden directories
// are not descended into. Symbolic links are matched by name but never
// followed. Unreadable directories are logged and skipped.
//
// The returned error is non-nil only when ctx is done.
func Search(ctx context.Context, root, pattern string, includeHidden bool) ([]string, error) {
	w := &walker{ctx: ctx, matcher: NewMatcher(pattern), includeHidden: includeHidden}
	res := w.walkDir(root)
	if res.err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res.matches, ctxErr
		}
		logrus.WithError(res.err).Warnf("Error searching %q", root)
	}
	return res.matches, nil
}

func (w *walker) walkDir(dir string) subtree {
	if err := w.ctx.Err(); err != nil {
		return subtree{err: err}
	}
	// os.ReadDir returns the entries read before an error, keep them.
	ents, err := os.ReadDir(dir)
	res := subtree{err: err}

	var dirs []string
	var files, dirMatches []string
	for _, ent := range ents {
		name := ent.Name()
		if !w.includeHidden && IsHidden(name) {
			continue
		}
		p := filepath.Join(dir, name)
		if ent.IsDir() {
			dirs = append(dirs, p)
			if w.matcher.Match(name) {
				dirMatches = append(dirMatches, p)
			}
			continue
		}
		if w.matcher.Match(name) {
			files = append(files, p)
		}
	}
	res.matches = append(files, dirMatches...)

	for _, d := range dirs {
		sub := w.walkDir(d)
		res.matches = append(res.matches, sub.matches...)
		if sub.err != nil {
			if ctxErr := w.ctx.Err(); ctxErr != nil {
				res.err = ctxErr
				return res
			}
			logrus.WithError(sub.err).Warnf("Skipping %q", d)
		}
	}
	return res
}

// SearchRoots searches every root and concatenates the results in root order.
// Up to concurrency roots are walked at the same time; each walk itself is
// sequential. Matches are not deduplicated across roots.
func SearchRoots(ctx context.Context, roots []sandbox.Entry, pattern string, includeHidden bool, concurrency int) ([]string, error) {
	results := make([][]string, len(roots))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, root := range roots {
		g.Go(func() error {
			logrus.Debugf("Searching in %q (%s)", root.Key, root.Path)
			found, err := Search(ctx, root.Path, pattern, includeHidden)
			results[i] = found
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all []string
	for _, found := range results {
		all = append(all, found...)
	}
	return all, nil
}
