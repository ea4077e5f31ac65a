/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for lokate.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/lokate/internal/mapfs"
)

// MapTree populates an in-memory filesystem from a path-to-content map.
func MapTree(mfs *mapfs.MapFileSystem, files map[string]string) {
	for p, content := range files {
		mfs.AddFile(p, content, 0644)
	}
}

// WriteTree writes a path-to-content map under dir on the real
// filesystem, creating parent directories as needed.
func WriteTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for p, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", full, err)
		}
	}
}
