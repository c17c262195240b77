// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

//nolint:revive // var-naming: avoid package names that conflict with Go standard library package names
package version

// Version is filled on compilation time, e.g.
// -ldflags "-X github.com/filesearch-dev/filesearch/pkg/version.Version=v0.1.0".
var Version = "<unknown>"
