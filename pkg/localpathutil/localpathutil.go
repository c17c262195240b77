// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package localpathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a path like "~", "~/", "~/foo" against homeDir.
// Paths like "~foo/bar" are unsupported.
func ExpandHome(orig, homeDir string) (string, error) {
	if orig == "" {
		return "", errors.New("empty path")
	}
	if !strings.HasPrefix(orig, "~") {
		return orig, nil
	}
	rest := orig[1:]
	if rest != "" && rest[0] != '/' && rest[0] != filepath.Separator {
		return "", fmt.Errorf("unexpandable path %q", orig)
	}
	return homeDir + rest, nil
}

// Expand expands a leading "~" on the host and makes the result absolute.
func Expand(orig string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	s, err := ExpandHome(orig, homeDir)
	if err != nil {
		return "", err
	}
	return filepath.Abs(s)
}
