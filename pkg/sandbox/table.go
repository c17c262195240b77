// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package sandbox

import "strings"

// Entry is one resolved root.
type Entry struct {
	Key  LocationKey `json:"key"`
	Path string      `json:"path"`
}

// Table is the resolved, read-only mapping of location keys to directories.
// A Table is never modified after construction, so it is safe for concurrent use.
type Table struct {
	entries []Entry
	index   map[LocationKey]string
}

// NewTable builds a Table from entries, keeping the first entry for a duplicated key.
// It does not check the filesystem; use Resolve for that.
func NewTable(entries ...Entry) *Table {
	t := &Table{index: make(map[LocationKey]string, len(entries))}
	for _, e := range entries {
		if _, ok := t.index[e.Key]; ok {
			continue
		}
		t.index[e.Key] = e.Path
		t.entries = append(t.entries, e)
	}
	return t
}

// Lookup returns the directory for key. The key is lowercased first.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	p, ok := t.index[LocationKey(strings.ToLower(key))]
	return p, ok
}

// Keys returns the allowed keys in table order.
func (t *Table) Keys() []LocationKey {
	if t == nil {
		return nil
	}
	keys := make([]LocationKey, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of allowed roots.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
