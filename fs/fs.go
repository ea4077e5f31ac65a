/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides filesystem abstractions for lokate.
package fs

import (
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// FileSystem provides an abstraction over the filesystem queries that
// resource resolution needs. Loaders only ever query a FileSystem; they
// never mutate or close it.
type FileSystem interface {
	// File system queries
	Stat(name string) (fs.FileInfo, error)
	Exists(path string) bool

	// File access, used by configuration loading
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Separator returns the path separator convention of this filesystem.
	Separator() string

	// URL returns the canonical file URL for an existing path.
	URL(name string) (*url.URL, error)

	// fs.FS compatibility - allows use with fs.WalkDir
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory and returns its entries.
func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Separator returns the host platform's path separator.
func (f *OSFileSystem) Separator() string {
	return string(filepath.Separator)
}

// URL returns the file URL for name, made absolute against the working
// directory.
func (f *OSFileSystem) URL(name string) (*url.URL, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
