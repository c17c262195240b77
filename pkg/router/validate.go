// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/filesearch-dev/filesearch/pkg/sandbox"
)

var (
	ErrInvalidLocationKey = errors.New("invalid base_path_key returned by model")
	ErrMissingPattern     = errors.New("missing or invalid file_pattern")
	ErrMissingFileName    = errors.New("missing or invalid file_name for show action")
)

// DefaultClarifyQuestion replaces an empty clarifying question.
const DefaultClarifyQuestion = "Could you clarify your request?"

var quotedRe = regexp.MustCompile(`["']([^"']{1,255})["']`)

// IsSimpleFileName reports whether name is a bare file name: non-empty, with
// no path separator, drive colon or glob metacharacter.
func IsSimpleFileName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\:*?[]`)
}

// FileNameFromQuery extracts a file name from the user query: the first
// quoted segment that is a simple file name, else the first
// whitespace-separated token that contains a dot and is a simple file name.
func FileNameFromQuery(query string) (string, bool) {
	for _, m := range quotedRe.FindAllStringSubmatch(query, -1) {
		if IsSimpleFileName(m[1]) {
			return m[1], true
		}
	}
	for _, tok := range strings.Fields(query) {
		if strings.Contains(tok, ".") && IsSimpleFileName(tok) {
			return tok, true
		}
	}
	return "", false
}

// Validate checks a parsed action before it is dispatched, repairing what can
// be repaired from the original query.
func Validate(a Action, query string) (Action, error) {
	switch a := a.(type) {
	case Search:
		if err := checkKey(a.LocationKey); err != nil {
			return nil, err
		}
		if a.Pattern == "" {
			return nil, fmt.Errorf("%w: please provide a glob or filename", ErrMissingPattern)
		}
		return a, nil
	case Show:
		if !IsSimpleFileName(a.FileName) {
			name, ok := FileNameFromQuery(query)
			if !ok {
				return nil, fmt.Errorf("%w: an exact file name is required, without paths or wildcards", ErrMissingFileName)
			}
			a.FileName = name
		}
		if err := checkKey(a.LocationKey); err != nil {
			return nil, err
		}
		return a, nil
	case Clarify:
		if strings.TrimSpace(a.Question) == "" {
			a.Question = DefaultClarifyQuestion
		}
		return a, nil
	case Answer:
		return a, nil
	default:
		return nil, fmt.Errorf("unexpected action type %T", a)
	}
}

// checkKey accepts an empty key or one of the fixed keys, exactly.
// An empty key means every location, the same as an absent one; models
// emit `"base_path_key": ""` for "anywhere" and the service treats both alike.
func checkKey(key string) error {
	if key == "" || sandbox.IsKnown(key) {
		return nil
	}
	return fmt.Errorf("%w: %q (allowed: %s)", ErrInvalidLocationKey, key, strings.Join(sandbox.KeyNames(), "/"))
}
