/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package bundle provides named in-program resource mounts.
//
// A Bundle plays the role a classloader plays on managed runtimes: a set
// of resource trees compiled or linked into the program, addressable by
// slash-separated names. Mounts are typically embed.FS values registered
// at init time. A process-wide system bundle backs lookups that miss the
// primary bundle, mirroring the system classloader.
package bundle

import (
	"io/fs"
	"net/url"
	"path"
	"strings"
	"sync"
)

type mount struct {
	name string
	fsys fs.FS
}

// Bundle is an ordered collection of named resource mounts. Lookup order
// is mount registration order.
type Bundle struct {
	mounts []mount
}

// New creates an empty bundle.
func New() *Bundle {
	return &Bundle{}
}

// Mount adds a resource tree under the given mount name and returns the
// bundle for chaining. A nil fsys is a programmer error.
func (b *Bundle) Mount(name string, fsys fs.FS) *Bundle {
	if fsys == nil {
		panic("bundle: nil filesystem")
	}
	b.mounts = append(b.mounts, mount{name: name, fsys: fsys})
	return b
}

// Len returns the number of mounts.
func (b *Bundle) Len() int {
	return len(b.mounts)
}

// Find looks name up across the bundle's mounts in order and returns the
// classpath URL of the first mount containing it. Names are cleaned to
// slash-separated relative form before lookup.
func (b *Bundle) Find(name string) (*url.URL, bool) {
	clean := cleanName(name)
	if clean == "." || !fs.ValidPath(clean) {
		return nil, false
	}
	for _, m := range b.mounts {
		if _, err := fs.Stat(m.fsys, clean); err == nil {
			return &url.URL{Scheme: "classpath", Opaque: m.name + "!/" + clean}, true
		}
	}
	return nil, false
}

func cleanName(name string) string {
	name = strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "/")
	return path.Clean(name)
}

var (
	systemMu sync.RWMutex
	system   = New()
)

// System returns the process-wide bundle. Resource trees are added to it
// with Register, typically from package init functions.
func System() *Bundle {
	systemMu.RLock()
	defer systemMu.RUnlock()
	return system
}

// Register mounts a resource tree on the process-wide bundle.
func Register(name string, fsys fs.FS) {
	systemMu.Lock()
	defer systemMu.Unlock()
	system.Mount(name, fsys)
}
