// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"

	"github.com/filesearch-dev/filesearch/pkg/sandbox"
)

func TestSearchDocsScenario(t *testing.T) {
	docs := fs.NewDir(t, "Documents",
		fs.WithFile("a.txt", "a"),
		fs.WithFile(".hidden.txt", "h"),
		fs.WithDir("sub", fs.WithFile("b.TXT", "b")),
	)
	found, err := Search(context.Background(), docs.Path(), "*.txt", false)
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{docs.Join("a.txt"), docs.Join("sub", "b.TXT")}, found)
}

func TestSearchHidden(t *testing.T) {
	root := fs.NewDir(t, "root",
		fs.WithFile("notes.txt", ""),
		fs.WithFile(".notes.txt", ""),
		fs.WithDir(".git", fs.WithFile("notes.txt", "")),
		fs.WithDir("visible", fs.WithDir(".cache", fs.WithFile("notes.txt", ""))),
	)

	t.Run("pruned", func(t *testing.T) {
		found, err := Search(context.Background(), root.Path(), "*notes*", false)
		assert.NilError(t, err)
		assert.DeepEqual(t, []string{root.Join("notes.txt")}, found)
		for _, p := range found {
			rel, err := filepath.Rel(root.Path(), p)
			assert.NilError(t, err)
			for _, comp := range strings.Split(rel, string(filepath.Separator)) {
				assert.Assert(t, !IsHidden(comp), "hidden component in %q", p)
			}
		}
	})

	t.Run("included", func(t *testing.T) {
		found, err := Search(context.Background(), root.Path(), "*notes*", true)
		assert.NilError(t, err)
		assert.DeepEqual(t, []string{
			root.Join(".notes.txt"),
			root.Join("notes.txt"),
			root.Join(".git", "notes.txt"),
			root.Join("visible", ".cache", "notes.txt"),
		}, found)
	})

	t.Run("hidden directories match by name", func(t *testing.T) {
		found, err := Search(context.Background(), root.Path(), ".git", true)
		assert.NilError(t, err)
		assert.DeepEqual(t, []string{root.Join(".git")}, found)
	})
}

func TestSearchMatchesDirectoriesAndDescends(t *testing.T) {
	root := fs.NewDir(t, "root",
		fs.WithFile("project.md", ""),
		fs.WithDir("Project", fs.WithFile("project.go", ""), fs.WithDir("project-old")),
	)
	found, err := Search(context.Background(), root.Path(), "project*", false)
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{
		root.Join("project.md"),
		root.Join("Project"),
		root.Join("Project", "project.go"),
		root.Join("Project", "project-old"),
	}, found)
}

func TestSearchIsIdempotent(t *testing.T) {
	root := fs.NewDir(t, "root",
		fs.WithFile("z.log", ""), fs.WithFile("a.log", ""),
		fs.WithDir("m", fs.WithFile("b.log", ""), fs.WithFile("c.LOG", "")),
	)
	first, err := Search(context.Background(), root.Path(), "*.log", false)
	assert.NilError(t, err)
	second, err := Search(context.Background(), root.Path(), "*.log", false)
	assert.NilError(t, err)
	assert.DeepEqual(t, first, second)
	assert.Equal(t, 4, len(first))
}

func TestSearchMalformedPattern(t *testing.T) {
	root := fs.NewDir(t, "root", fs.WithFile("[", ""))
	found, err := Search(context.Background(), root.Path(), "[", false)
	assert.NilError(t, err)
	assert.Equal(t, 0, len(found))
}

func TestSearchMissingRoot(t *testing.T) {
	found, err := Search(context.Background(), filepath.Join(t.TempDir(), "gone"), "*", false)
	assert.NilError(t, err)
	assert.Equal(t, 0, len(found))
}

func TestSearchSkipsUnreadableSubtree(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	root := fs.NewDir(t, "root",
		fs.WithDir("locked", fs.WithFile("secret.txt", "")),
		fs.WithDir("open", fs.WithFile("public.txt", "")),
	)
	assert.NilError(t, os.Chmod(root.Join("locked"), 0o000))
	t.Cleanup(func() { _ = os.Chmod(root.Join("locked"), 0o755) })

	found, err := Search(context.Background(), root.Path(), "*.txt", false)
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{root.Join("open", "public.txt")}, found)
}

func TestSearchDoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := fs.NewDir(t, "root", fs.WithDir("a", fs.WithFile("x.txt", "")))
	assert.NilError(t, os.Symlink(root.Path(), root.Join("a", "loop")))

	found, err := Search(context.Background(), root.Path(), "*", false)
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{root.Join("a"), root.Join("a", "loop"), root.Join("a", "x.txt")}, found)
}

func TestSearchCanceled(t *testing.T) {
	root := fs.NewDir(t, "root", fs.WithDir("a", fs.WithFile("x.txt", "")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, root.Path(), "*", false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchRoots(t *testing.T) {
	docs := fs.NewDir(t, "docs", fs.WithFile("README.md", ""))
	music := fs.NewDir(t, "music", fs.WithDir("a", fs.WithFile("readme.MD", "")))
	roots := []sandbox.Entry{
		{Key: sandbox.Docs, Path: docs.Path()},
		{Key: sandbox.Downloads, Path: filepath.Join(t.TempDir(), "missing")},
		{Key: sandbox.Music, Path: music.Path()},
		{Key: sandbox.Videos, Path: docs.Path()},
	}
	for _, concurrency := range []int{0, 1, 3} {
		found, err := SearchRoots(context.Background(), roots, "readme.md", false, concurrency)
		assert.NilError(t, err)
		assert.DeepEqual(t, []string{
			docs.Join("README.md"),
			music.Join("a", "readme.MD"),
			docs.Join("README.md"),
		}, found)
	}
}
