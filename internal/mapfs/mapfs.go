/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"io/fs"
	"net/url"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements fs.FileSystem using an in-memory fstest.MapFS.
// This is useful for testing resolution without touching the real
// filesystem. A MapFileSystem can follow either Unix or Windows path
// conventions; the Windows mode expects drive-letter rooted paths and
// rejects slash-rooted ones the way a real Windows filesystem would.
type MapFileSystem struct {
	mu        sync.RWMutex
	mapFS     fstest.MapFS
	separator string
	windows   bool
	modTime   time.Time
}

// New creates a new in-memory filesystem with Unix path conventions.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:     make(fstest.MapFS),
		separator: "/",
		modTime:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// NewWindows creates a new in-memory filesystem with Windows path
// conventions: backslash separators and drive-letter rooted paths.
func NewWindows() *MapFileSystem {
	mfs := New()
	mfs.separator = "\\"
	mfs.windows = true
	return mfs
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	mfs.mapFS[p] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// AddDir adds a directory to the in-memory filesystem.
func (mfs *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	mfs.mapFS[p] = &fstest.MapFile{
		Mode:    mode | fs.ModeDir,
		ModTime: mfs.modTime,
	}
}

// Stat implements fs.FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if err := mfs.check(name); err != nil {
		return nil, err
	}
	return fs.Stat(mfs.mapFS, mfs.cleanPath(name))
}

// Exists implements fs.FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	_, err := mfs.Stat(p)
	return err == nil
}

// ReadFile implements fs.FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if err := mfs.check(name); err != nil {
		return nil, err
	}
	return fs.ReadFile(mfs.mapFS, mfs.cleanPath(name))
}

// ReadDir implements fs.FileSystem.
func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if err := mfs.check(name); err != nil {
		return nil, err
	}
	return fs.ReadDir(mfs.mapFS, mfs.cleanPath(name))
}

// Open implements fs.FileSystem.
func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if err := mfs.check(name); err != nil {
		return nil, err
	}
	return mfs.mapFS.Open(mfs.cleanPath(name))
}

// Separator implements fs.FileSystem.
func (mfs *MapFileSystem) Separator() string {
	return mfs.separator
}

// URL implements fs.FileSystem.
func (mfs *MapFileSystem) URL(name string) (*url.URL, error) {
	if err := mfs.check(name); err != nil {
		return nil, err
	}
	return &url.URL{Scheme: "file", Path: "/" + mfs.cleanPath(name)}, nil
}

// check rejects path names the filesystem convention considers malformed.
// Windows absolute paths must be drive-rooted, never slash-rooted.
func (mfs *MapFileSystem) check(name string) error {
	if mfs.windows && (strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\")) {
		return &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	return nil
}

// cleanPath converts a path into a map key: forward slashes, cleaned,
// no leading slash.
func (mfs *MapFileSystem) cleanPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return "."
	}
	return p
}
