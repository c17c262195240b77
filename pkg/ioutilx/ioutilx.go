// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package ioutilx

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadAtMaximum reads n bytes at maximum.
// truncated reports whether r had more data.
func ReadAtMaximum(r io.Reader, n int64) (b []byte, truncated bool, err error) {
	lr := &io.LimitedReader{
		R: r,
		N: n + 1,
	}
	b, err = io.ReadAll(lr)
	if err != nil {
		return b, false, err
	}
	if int64(len(b)) > n {
		return b[:n], true, nil
	}
	return b, false, nil
}

var (
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
)

// FromUTF16 returns an io.Reader for UTF-16 data.
// The byte order mark is honored, with little endian as the fallback.
func FromUTF16(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
}

// DecodeText returns b as valid UTF-8 text.
// Data that starts with a UTF-16 byte order mark is decoded as UTF-16;
// anything else is taken as UTF-8, with invalid sequences replaced by U+FFFD.
func DecodeText(b []byte) string {
	if bytes.HasPrefix(b, bomUTF16LE) || bytes.HasPrefix(b, bomUTF16BE) {
		if out, err := io.ReadAll(FromUTF16(bytes.NewReader(b))); err == nil {
			return strings.ToValidUTF8(string(out), "�")
		}
	}
	return strings.ToValidUTF8(string(b), "�")
}
