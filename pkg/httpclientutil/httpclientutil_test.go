// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package httpclientutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, r.Method == http.MethodPost)
		assert.Check(t, r.Header.Get("Content-Type") == "application/json")
		b, _ := io.ReadAll(r.Body)
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	resp, err := Post(context.Background(), srv.Client(), srv.URL, "application/json", strings.NewReader(`{"a":1}`))
	assert.NilError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	assert.NilError(t, err)
	assert.Equal(t, `{"a":1}`, string(b))
}

func TestHTTPStatusError(t *testing.T) {
	testCases := []struct {
		body     string
		expected string
	}{
		{`{"error":"model \"x\" not found"}`, `unexpected HTTP status 404 Not Found: model "x" not found`},
		{"plain text\n", "unexpected HTTP status 404 Not Found: plain text"},
		{`{"message":"other shape"}`, `unexpected HTTP status 404 Not Found: {"message":"other shape"}`},
	}
	for _, tc := range testCases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(tc.body))
		}))
		_, err := Post(context.Background(), srv.Client(), srv.URL, "", http.NoBody)
		srv.Close()
		var se *HTTPStatusError
		assert.Assert(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
		assert.Error(t, err, tc.expected)
	}
}
