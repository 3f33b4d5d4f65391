/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs abstracts the filesystem token sources are read from and
// build outputs are written to.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is read as an io/fs filesystem, so fs.WalkDir and doublestar
// matching work against it, and written through WriteFile and MkdirAll.
// Paths are OS paths, absolute or relative to the working directory.
type FileSystem interface {
	fs.StatFS
	fs.ReadDirFS
	fs.ReadFileFS

	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// Exists reports whether path names a file or directory.
	Exists(path string) bool
}

// OSFileSystem is the FileSystem backed by package os.
type OSFileSystem struct{}

// NewOSFileSystem returns the OS filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (*OSFileSystem) Open(name string) (fs.File, error) { return os.Open(name) }
func (*OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (*OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (*OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
func (*OSFileSystem) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (*OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (*OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
