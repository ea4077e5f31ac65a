/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scheme

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"classpath prefix", "classpath:META-INF/res.nfo", "classpath"},
		{"file single slash", "file:/tmp/res.nfo", "file"},
		{"file triple slash", "file:///tmp/res.nfo", "file"},
		{"bare absolute path", "/tmp/res.nfo", ""},
		{"bare relative path", "res.nfo", ""},
		{"windows drive letter", `c:\tmp\res.nfo`, ""},
		{"drive letter forward slashes", "c:/tmp/res.nfo", ""},
		{"http url", "http://example.com/res.nfo", "http"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.path); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestHas(t *testing.T) {
	if !Has("classpath:res.nfo") {
		t.Error("expected Has to report a scheme for classpath:res.nfo")
	}
	if Has(`c:\tmp\res.nfo`) {
		t.Error("drive letter must not count as a scheme")
	}
	if Has("/tmp/res.nfo") {
		t.Error("bare path must not count as a scheme")
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"opaque classpath", "classpath:META-INF/res.nfo", "META-INF/res.nfo"},
		{"file single slash", "file:/tmp/res.nfo", "/tmp/res.nfo"},
		{"file triple slash", "file:///tmp/res.nfo", "/tmp/res.nfo"},
		{"file with host", "file://host/res.nfo", "host/res.nfo"},
		{"drive letter kept intact", "file:///c:/tmp/res.nfo", "/c:/tmp/res.nfo"},
		{"drive letter host form", "file://c:/tmp/res.nfo", "c:/tmp/res.nfo"},
		{"drive letter no slashes", "file:c:/tmp/res.nfo", "c:/tmp/res.nfo"},
		{"bare path unchanged", "/tmp/res.nfo", "/tmp/res.nfo"},
		{"relative path unchanged", "res.nfo", "res.nfo"},
		{"backslashes normalized", `c:\tmp\res.nfo`, "c:/tmp/res.nfo"},
		{"odd but parseable", "file:incorrect:path:", "incorrect:path:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.path); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// Stripping a scheme applied with the :// delimiter must return exactly
// the bare path.
func TestStripRoundTrip(t *testing.T) {
	bares := []string{
		"META-INF/res.nfo",
		"tmp/res.nfo",
		"deeply/nested/dir/file.txt",
	}

	for _, bare := range bares {
		prefixed := "classpath://" + bare
		if got := Strip(prefixed); got != bare {
			t.Errorf("Strip(%q) = %q, want %q", prefixed, got, bare)
		}
	}
}
