// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package sandbox

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
)

// xdgNames maps location keys to the variables of xdg-user-dirs(1).
var xdgNames = map[LocationKey]string{
	Docs:      "XDG_DOCUMENTS_DIR",
	Downloads: "XDG_DOWNLOAD_DIR",
	Desktop:   "XDG_DESKTOP_DIR",
	Pictures:  "XDG_PICTURES_DIR",
	Videos:    "XDG_VIDEOS_DIR",
	Music:     "XDG_MUSIC_DIR",
}

// ParseUserDirs parses a user-dirs.dirs file.
//
// Lines have the form XDG_xxx_DIR="$HOME/yyy" or XDG_xxx_DIR="/yyy".
// A directory equal to $HOME means the folder is disabled and is omitted.
func ParseUserDirs(r io.Reader, home string) (map[LocationKey]string, error) {
	byVar := make(map[string]LocationKey, len(xdgNames))
	for k, v := range xdgNames {
		byVar[v] = k
	}
	res := make(map[LocationKey]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, ok := byVar[strings.TrimSpace(name)]
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		switch {
		case value == "$HOME" || value == "$HOME/":
			continue
		case strings.HasPrefix(value, "$HOME/"):
			value = filepath.Join(home, strings.TrimPrefix(value, "$HOME/"))
		case !strings.HasPrefix(value, "/"):
			// only absolute paths and paths relative to $HOME are valid
			continue
		}
		res[key] = filepath.Clean(value)
	}
	return res, sc.Err()
}
