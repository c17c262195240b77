// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package chat runs the interactive loop of the filesearch client: each line
// is planned by the router, dispatched, and rendered.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/status"

	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
	"github.com/filesearch-dev/filesearch/pkg/llm"
	"github.com/filesearch-dev/filesearch/pkg/ptr"
	"github.com/filesearch-dev/filesearch/pkg/router"
	"github.com/filesearch-dev/filesearch/pkg/show"
)

// Planner plans a query. *router.Router implements Planner.
type Planner interface {
	Route(ctx context.Context, query string) (router.Action, error)
}

type Session struct {
	planner  Planner
	searcher api.Searcher
	resolver *show.Resolver
	out      io.Writer

	// Interactive enables the banner and the "> " prompt.
	Interactive bool
	// ServerAddress is mentioned when the search daemon cannot be reached.
	ServerAddress string
}

func NewSession(planner Planner, searcher api.Searcher, out io.Writer) *Session {
	return &Session{
		planner:  planner,
		searcher: searcher,
		resolver: show.NewResolver(searcher),
		out:      out,
	}
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsExit reports whether line asks to leave the loop.
func IsExit(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	return s == "exit" || s == "quit"
}

// Run reads queries from in, one per line, until EOF, "exit" or "quit".
// Failures of a single turn are reported and do not end the loop.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if s.Interactive {
		fmt.Fprintln(s.out, "filesearch is ready. Type 'exit' or 'quit' to stop.")
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		if s.Interactive {
			fmt.Fprint(s.out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if IsExit(line) {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Turn(ctx, line)
	}
}

// Turn handles one query and writes the result.
func (s *Session) Turn(ctx context.Context, query string) {
	logrus.Debugf("Planning %q", query)
	action, err := s.planner.Route(ctx, query)
	if err != nil {
		s.reportError(err)
		return
	}
	if err := s.Dispatch(ctx, action); err != nil {
		s.reportError(err)
	}
}

// Dispatch executes a validated action.
func (s *Session) Dispatch(ctx context.Context, action router.Action) error {
	switch a := action.(type) {
	case router.Answer:
		fmt.Fprintln(s.out, a.Text)
	case router.Clarify:
		fmt.Fprintf(s.out, "Clarification needed: %s\n", a.Question)
	case router.Search:
		return s.Search(ctx, a.Pattern, a.LocationKey, a.IncludeHidden)
	case router.Show:
		return s.Show(ctx, a.FileName, a.LocationKey, a.IncludeHidden)
	default:
		return fmt.Errorf("unexpected action type %T", action)
	}
	return nil
}

// Search runs a search and renders the response.
func (s *Session) Search(ctx context.Context, pattern, locationKey string, includeHidden bool) error {
	res, err := s.searcher.SearchFiles(ctx, &api.SearchRequest{
		FilePattern:   pattern,
		BasePathKey:   ptr.NonZero(locationKey),
		IncludeHidden: includeHidden,
	})
	if err != nil {
		return err
	}
	RenderSearch(s.out, res)
	return nil
}

// Show resolves fileName and renders the outcome.
func (s *Session) Show(ctx context.Context, fileName, locationKey string, includeHidden bool) error {
	out, err := s.resolver.Show(ctx, fileName, locationKey, includeHidden)
	if err != nil {
		return err
	}
	RenderShow(s.out, out)
	return nil
}

func (s *Session) reportError(err error) {
	var (
		serr *show.SearchError
		berr *llm.BackendError
	)
	switch {
	case errors.As(err, &serr):
		fmt.Fprintf(s.out, "Server error: %s\n", serr.Message)
	case errors.Is(err, router.ErrInvalidLocationKey),
		errors.Is(err, router.ErrMissingPattern),
		errors.Is(err, router.ErrMissingFileName):
		fmt.Fprintf(s.out, "Cannot run that request: %v\n", err)
	case errors.As(err, &berr):
		fmt.Fprintf(s.out, "Planning failed: %v\n", berr.Err)
		fmt.Fprintf(s.out, "   Check that the %s backend at %s is running and reachable.\n", berr.Backend, berr.URL)
	default:
		if st, ok := status.FromError(err); ok {
			fmt.Fprintf(s.out, "Search call failed: %s\n", st.Message())
			if s.ServerAddress != "" {
				fmt.Fprintf(s.out, "   Is filesearchd running at %s?\n", s.ServerAddress)
			}
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
