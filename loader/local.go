/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import (
	"errors"
	"io/fs"
	"net/url"
	"strings"

	lfs "bennypowers.dev/lokate/fs"
	"bennypowers.dev/lokate/internal/logger"
	"bennypowers.dev/lokate/scheme"
)

// LocalLoader resolves paths against a filesystem under the "file"
// scheme. The filesystem is injectable so tests can substitute an
// in-memory one, including one with Windows path conventions.
type LocalLoader struct {
	fs            lfs.FileSystem
	fallbackPaths []string
}

// NewLocalLoader creates a local loader backed by the host filesystem.
func NewLocalLoader() *LocalLoader {
	return &LocalLoader{fs: lfs.NewOSFileSystem()}
}

// NewLocalLoaderWith creates a local loader backed by the given
// filesystem with the given fallback prefixes.
func NewLocalLoaderWith(filesystem lfs.FileSystem, fallbackPaths ...string) *LocalLoader {
	if filesystem == nil {
		panic("loader: nil filesystem")
	}
	return &LocalLoader{fs: filesystem, fallbackPaths: fallbackPaths}
}

// SetFileSystem sets the filesystem for lookups. A nil filesystem is a
// programmer error.
func (l *LocalLoader) SetFileSystem(filesystem lfs.FileSystem) {
	if filesystem == nil {
		panic("loader: nil filesystem")
	}
	l.fs = filesystem
}

// AddFallbackPath appends a prefix to try when direct resolution fails.
func (l *LocalLoader) AddFallbackPath(path string) {
	l.fallbackPaths = append(l.fallbackPaths, path)
}

// Scheme implements Loader.
func (l *LocalLoader) Scheme() string {
	return "file"
}

// Separator implements Loader.
func (l *LocalLoader) Separator() string {
	return l.fs.Separator()
}

// ExtractScheme classifies path the way the local filesystem would:
// bare paths and drive-letter paths ("c:\tmp") report "file" rather
// than going through generic URL parsing.
func (l *LocalLoader) ExtractScheme(path string) string {
	if s := scheme.Extract(path); s != "" {
		return s
	}
	return "file"
}

// Resolve implements Loader.
func (l *LocalLoader) Resolve(path string) ResourceInfo {
	return resolve(l, path, l.fallbackPaths)
}

// Lookup finds an existing filesystem path and returns its canonical
// file URL. Paths the filesystem rejects as malformed get one cleanup
// retry with leading separator runs stripped; a path that is still
// malformed, or simply absent, is a miss, never an error.
func (l *LocalLoader) Lookup(barePath string) (*url.URL, bool) {
	if barePath == "" {
		return nil, false
	}
	_, err := l.fs.Stat(barePath)
	if err == nil {
		u, uerr := l.fs.URL(barePath)
		if uerr != nil {
			logger.Debug("lokate: cannot build URL for %q: %v", barePath, uerr)
			return nil, false
		}
		return u, true
	}
	if !errors.Is(err, fs.ErrNotExist) {
		// Last resort, remove leading separators and retry once.
		trimmed := strings.TrimLeft(barePath, "\\/")
		if trimmed != barePath {
			return l.Lookup(trimmed)
		}
		logger.Debug("lokate: invalid path %q: %v", barePath, err)
	}
	return nil, false
}

// Name implements lookuper.
func (l *LocalLoader) Name() string {
	return "LocalLoader"
}
