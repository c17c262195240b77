// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package sandbox

import (
	"golang.org/x/sys/windows"
)

var folderIDs = map[LocationKey]*windows.KNOWNFOLDERID{
	Docs:      windows.FOLDERID_Documents,
	Downloads: windows.FOLDERID_Downloads,
	Desktop:   windows.FOLDERID_Desktop,
	Pictures:  windows.FOLDERID_Pictures,
	Videos:    windows.FOLDERID_Videos,
	Music:     windows.FOLDERID_Music,
}

type knownFolderProvider struct{}

// DefaultProvider returns the PathProvider of the host, backed by SHGetKnownFolderPath.
func DefaultProvider() PathProvider {
	return knownFolderProvider{}
}

func (knownFolderProvider) KnownFolder(key LocationKey) (string, error) {
	id, ok := folderIDs[key]
	if !ok {
		return "", ErrUnavailable
	}
	return windows.KnownFolderPath(id, windows.KF_FLAG_DEFAULT)
}
