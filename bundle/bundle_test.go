/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package bundle

import (
	"testing"
	"testing/fstest"
)

func TestBundle_Find(t *testing.T) {
	b := New().Mount("app", fstest.MapFS{
		"META-INF/cl_resource.nfo": &fstest.MapFile{Data: []byte("payload")},
	})

	u, ok := b.Find("META-INF/cl_resource.nfo")
	if !ok {
		t.Fatal("expected mounted resource to be found")
	}
	if got := u.String(); got != "classpath:app!/META-INF/cl_resource.nfo" {
		t.Errorf("URL = %q, want classpath:app!/META-INF/cl_resource.nfo", got)
	}

	if _, ok := b.Find("absent.nfo"); ok {
		t.Error("expected miss for absent resource")
	}
}

// Names are cleaned to slash-separated relative form before lookup.
func TestBundle_FindCleansNames(t *testing.T) {
	b := New().Mount("app", fstest.MapFS{
		"META-INF/cl_resource.nfo": &fstest.MapFile{Data: []byte("payload")},
	})

	for _, name := range []string{
		"/META-INF/cl_resource.nfo",
		"META-INF//cl_resource.nfo",
		`META-INF\cl_resource.nfo`,
	} {
		if _, ok := b.Find(name); !ok {
			t.Errorf("Find(%q) missed, want hit", name)
		}
	}
}

func TestBundle_FindRejectsEscapingNames(t *testing.T) {
	b := New().Mount("app", fstest.MapFS{
		"res.nfo": &fstest.MapFile{Data: []byte("payload")},
	})

	if _, ok := b.Find("../res.nfo"); ok {
		t.Error("expected names escaping the mount to miss")
	}
}

// Mount order is lookup order; the first mount containing the name wins.
func TestBundle_MountOrder(t *testing.T) {
	b := New().
		Mount("first", fstest.MapFS{
			"dup.nfo": &fstest.MapFile{Data: []byte("a")},
		}).
		Mount("second", fstest.MapFS{
			"dup.nfo": &fstest.MapFile{Data: []byte("b")},
		})

	u, ok := b.Find("dup.nfo")
	if !ok {
		t.Fatal("expected hit")
	}
	if got := u.String(); got != "classpath:first!/dup.nfo" {
		t.Errorf("URL = %q, want the first mount", got)
	}
}

func TestBundle_NilMountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil filesystem")
		}
	}()
	New().Mount("bad", nil)
}

func TestSystemRegister(t *testing.T) {
	Register("bundle-system-test", fstest.MapFS{
		"registered.nfo": &fstest.MapFile{Data: []byte("payload")},
	})

	if _, ok := System().Find("registered.nfo"); !ok {
		t.Error("expected registered resource on the system bundle")
	}
}
