// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package localpathutil

import (
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestExpandDir(t *testing.T) {
	h, err := Expand("~")
	assert.NilError(t, err)
	d, err := Expand("~/Documents")
	assert.NilError(t, err)
	assert.Equal(t, d, filepath.Join(h, "Documents"))
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		orig    string
		want    string
		wantErr string
	}{
		{orig: "~", want: "/home/user"},
		{orig: "~/Music", want: "/home/user/Music"},
		{orig: "/srv/docs", want: "/srv/docs"},
		{orig: "~other/docs", wantErr: "unexpandable path"},
		{orig: "", wantErr: "empty path"},
	}
	for _, tc := range tests {
		t.Run(tc.orig, func(t *testing.T) {
			got, err := ExpandHome(tc.orig, "/home/user")
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
