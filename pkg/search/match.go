// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// Fold returns the case-insensitive form of s used for matching names.
func Fold(s string) string {
	return strings.ToLower(s)
}

// Matcher matches entry names against a shell glob, ignoring case.
//
// Supported syntax: '*', '?', '[abc]', '[a-z]', '[!a]' and '[^a]'.
// Every other character is literal, including '{', '}' and '\'.
// A '[' without a closing ']' is literal too.
type Matcher struct {
	pattern string
	valid   bool
}

// NewMatcher compiles pattern.
func NewMatcher(pattern string) *Matcher {
	translated := translate(Fold(pattern))
	m := &Matcher{pattern: translated, valid: doublestar.ValidatePattern(translated)}
	if !m.valid {
		logrus.Debugf("Pattern %q is malformed, it will not match anything", pattern)
	}
	return m
}

// Match reports whether name matches.
func (m *Matcher) Match(name string) bool {
	if !m.valid {
		return false
	}
	ok, err := doublestar.Match(m.pattern, Fold(name))
	return err == nil && ok
}

// Match reports whether name matches pattern, ignoring case.
func Match(pattern, name string) bool {
	return NewMatcher(pattern).Match(name)
}

// translate rewrites a shell glob into doublestar syntax, escaping the
// characters doublestar would otherwise interpret.
func translate(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		switch c := pattern[i]; c {
		case '[':
			class, n, ok := bracketClass(pattern[i:])
			if !ok {
				b.WriteString(`\[`)
				i++
				continue
			}
			b.WriteString(class)
			i += n
		case '\\', '{', '}', ']':
			b.WriteByte('\\')
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// bracketClass parses the class at the start of s, which begins with '['.
// A ']' right after the opening bracket (or after the negation) is a member.
// It returns the escaped class and the number of bytes consumed, or false
// when the class is not closed.
func bracketClass(s string) (string, int, bool) {
	j := 1
	negate := j < len(s) && (s[j] == '!' || s[j] == '^')
	if negate {
		j++
	}
	start := j
	if j < len(s) && s[j] == ']' {
		j++
	}
	end := strings.IndexByte(s[j:], ']')
	if end < 0 {
		return "", 0, false
	}
	end += j

	var b strings.Builder
	b.WriteByte('[')
	if negate {
		b.WriteByte('!')
	}
	for k := start; k < end; k++ {
		if c := s[k]; c == '\\' || c == ']' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[k])
	}
	b.WriteByte(']')
	return b.String(), end + 1, true
}
