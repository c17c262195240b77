// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package sandbox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// ErrUnavailable is returned by a PathProvider for a folder the platform does not define.
var ErrUnavailable = errors.New("known folder unavailable")

// PathProvider returns the platform's directory for a location key.
type PathProvider interface {
	KnownFolder(key LocationKey) (string, error)
}

// PathProviderFunc adapts a function to PathProvider.
type PathProviderFunc func(key LocationKey) (string, error)

func (f PathProviderFunc) KnownFolder(key LocationKey) (string, error) {
	return f(key)
}

// Resolve builds the sandbox table. overrides take precedence over provider.
// A key whose directory cannot be determined, is not absolute, or does not
// exist as a directory is left out of the table.
func Resolve(provider PathProvider, overrides map[LocationKey]string) *Table {
	var entries []Entry
	for _, key := range Keys() {
		dir, err := lookup(provider, overrides, key)
		if err != nil {
			logrus.WithError(err).Warnf("Dropping location key %q", key)
			continue
		}
		entries = append(entries, Entry{Key: key, Path: dir})
	}
	return NewTable(entries...)
}

func lookup(provider PathProvider, overrides map[LocationKey]string, key LocationKey) (string, error) {
	dir, ok := overrides[key]
	if !ok {
		if provider == nil {
			return "", ErrUnavailable
		}
		var err error
		dir, err = provider.KnownFolder(key)
		if err != nil {
			return "", err
		}
	}
	if dir == "" {
		return "", ErrUnavailable
	}
	if !filepath.IsAbs(dir) {
		return "", fmt.Errorf("expected an absolute path, got %q", dir)
	}
	st, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}
	return filepath.Clean(dir), nil
}
