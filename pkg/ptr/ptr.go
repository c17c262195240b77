// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package ptr holds utilities for optional values passed by pointer.
package ptr

// Of returns pointer to value.
func Of[T any](value T) *T {
	return &value
}

// Deref returns the value p points to, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// NonZero returns a pointer to value, or nil when value is the zero value.
// Optional wire fields use it so that "" is sent as absent.
func NonZero[T comparable](value T) *T {
	var zero T
	if value == zero {
		return nil
	}
	return &value
}
