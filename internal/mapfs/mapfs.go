/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs is an in-memory FileSystem for tests, backed by
// fstest.MapFS. Directories exist implicitly once a file sits under them.
package mapfs

import (
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// modTime stamps every file so Stat results are stable.
var modTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// MapFileSystem is safe for concurrent use.
type MapFileSystem struct {
	mu    sync.RWMutex
	files fstest.MapFS
}

// New returns an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{files: make(fstest.MapFS)}
}

// AddFile stores content at p, replacing any existing file.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	_ = m.WriteFile(p, []byte(content), mode)
}

// WriteFile stores a copy of data at name.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key(name)] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: modTime}
	return nil
}

// MkdirAll records p as a directory. A file already at p is an error.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(p)
	if f, ok := m.files[k]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
	}
	m.files[k] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm(), ModTime: modTime}
	return nil
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.ReadFile(key(name))
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(key(name))
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Stat(key(name))
}

func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.ReadDir(key(name))
}

// Exists reports whether p is a stored file, a recorded directory or the
// parent of a stored file.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k := key(p)
	if _, ok := m.files[k]; ok || k == "." {
		return true
	}
	prefix := k + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// key maps an OS-style path to a MapFS name: cleaned, without the leading
// slash.
func key(p string) string {
	k := strings.TrimPrefix(path.Clean("/"+p), "/")
	if k == "" {
		return "."
	}
	return k
}
