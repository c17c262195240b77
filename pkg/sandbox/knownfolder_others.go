//go:build !windows

// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package sandbox

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

func defaultFolderName(key LocationKey) string {
	switch key {
	case Docs:
		return "Documents"
	case Downloads:
		return "Downloads"
	case Desktop:
		return "Desktop"
	case Pictures:
		return "Pictures"
	case Videos:
		if runtime.GOOS == "darwin" {
			return "Movies"
		}
		return "Videos"
	case Music:
		return "Music"
	}
	return ""
}

type homeProvider struct {
	home     string
	userDirs map[LocationKey]string
}

// DefaultProvider returns the PathProvider of the host.
// On Linux and BSDs, xdg-user-dirs settings take precedence over the
// conventional folder names under the home directory.
func DefaultProvider() PathProvider {
	home, err := os.UserHomeDir()
	if err != nil {
		logrus.WithError(err).Warn("Failed to determine the home directory")
		return &homeProvider{}
	}
	p := &homeProvider{home: home}
	if runtime.GOOS == "darwin" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	f, err := os.Open(filepath.Join(configHome, "user-dirs.dirs"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logrus.WithError(err).Warn("Failed to open user-dirs.dirs")
		}
		return p
	}
	defer f.Close()
	p.userDirs, err = ParseUserDirs(f, home)
	if err != nil {
		logrus.WithError(err).Warn("Failed to parse user-dirs.dirs")
	}
	return p
}

func (p *homeProvider) KnownFolder(key LocationKey) (string, error) {
	if dir, ok := p.userDirs[key]; ok {
		return dir, nil
	}
	name := defaultFolderName(key)
	if p.home == "" || name == "" {
		return "", ErrUnavailable
	}
	return filepath.Join(p.home, name), nil
}
