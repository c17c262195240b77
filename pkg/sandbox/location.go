// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package sandbox maps symbolic location keys to the directories a search is
// allowed to walk.
package sandbox

import (
	"fmt"
	"slices"
	"strings"
)

// LocationKey is the symbolic name of one sandboxed root directory.
type LocationKey string

const (
	Docs      LocationKey = "docs"
	Downloads LocationKey = "downloads"
	Desktop   LocationKey = "desktop"
	Pictures  LocationKey = "pictures"
	Videos    LocationKey = "videos"
	Music     LocationKey = "music"
)

// Keys returns the fixed location keys, in table order.
func Keys() []LocationKey {
	return []LocationKey{Docs, Downloads, Desktop, Pictures, Videos, Music}
}

// KeyNames returns Keys as strings.
func KeyNames() []string {
	keys := Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return names
}

// IsKnown reports whether s is exactly one of the fixed keys.
func IsKnown(s string) bool {
	return slices.Contains(Keys(), LocationKey(s))
}

// ParseKey lowercases s and checks it against the fixed keys.
func ParseKey(s string) (LocationKey, error) {
	k := LocationKey(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Keys(), k) {
		return "", fmt.Errorf("unknown location key %q (expected one of %s)", s, strings.Join(KeyNames(), ", "))
	}
	return k, nil
}
