// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package ptr

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestOf(t *testing.T) {
	assert.DeepEqual(t, true, *Of(true))
	assert.DeepEqual(t, "docs", *Of("docs"))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "all", Deref(nil, "all"))
	assert.Equal(t, "docs", Deref(Of("docs"), "all"))
}

func TestNonZero(t *testing.T) {
	assert.Assert(t, NonZero("") == nil)
	assert.Assert(t, NonZero(0) == nil)
	assert.Equal(t, "music", *NonZero("music"))
}
