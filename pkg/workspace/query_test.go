package workspace

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestResolveRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "wezterm", "")
	writeManifest(t, root, "wezterm-gui", "")
	writeManifest(t, root, "term", "")

	reg, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		name     string
		selector string
		wantDir  string
		wantErr  error
	}{
		{"ExactDir", filepath.Join(root, "term"), filepath.Join(root, "term"), nil},
		{"ExactBaseName", "wezterm", filepath.Join(root, "wezterm"), nil},
		{"BaseNameBeatsSubstring", "term", filepath.Join(root, "term"), nil},
		{"UniqueSubstring", "gui", filepath.Join(root, "wezterm-gui"), nil},
		{"Ambiguous", "erm", "", ErrRootAmbiguous},
		{"NotFound", "mux", "", ErrRootNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := reg.ResolveRoot(tt.selector)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveRoot: %v", err)
			}
			if p.Dir != tt.wantDir {
				t.Errorf("Dir = %s, want %s", p.Dir, tt.wantDir)
			}
		})
	}
}

func TestWriteTreeSharedSubtree(t *testing.T) {
	// Diamond: app -> (ui, net), both -> core. The shared leaf prints once
	// per path reaching it.
	root := t.TempDir()
	writeManifest(t, root, "app", "ui = { path = \"../ui\" }\nnet = { path = \"../net\" }\n")
	writeManifest(t, root, "ui", "core = { path = \"../core\" }\n")
	writeManifest(t, root, "net", "core = { path = \"../core\" }\n")
	writeManifest(t, root, "core", "")

	reg, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	app, err := reg.ResolveRoot("app")
	if err != nil {
		t.Fatalf("ResolveRoot: %v", err)
	}

	var buf bytes.Buffer
	reg.WriteTree(&buf, app)

	want := "* " + filepath.Join(root, "app") + "\n" +
		"  * " + filepath.Join(root, "ui") + "\n" +
		"    * " + filepath.Join(root, "core") + "\n" +
		"  * " + filepath.Join(root, "net") + "\n" +
		"    * " + filepath.Join(root, "core") + "\n"
	if buf.String() != want {
		t.Errorf("tree mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestLocateManifestsPropagatesErrors(t *testing.T) {
	if _, err := LocateManifests(filepath.Join(t.TempDir(), "absent"), "Cargo.toml", nil); err == nil {
		t.Fatal("expected error for unreadable root")
	}
}

func TestLocateManifestsIncludesRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, ".", "")
	writeManifest(t, root, "sub", "")

	got, err := LocateManifests(root, "Cargo.toml", nil)
	if err != nil {
		t.Fatalf("LocateManifests: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("found %d manifests, want 2: %v", len(got), got)
	}
	if got[0] != filepath.Join(root, "Cargo.toml") {
		t.Errorf("got[0] = %s, want root manifest first", got[0])
	}
}
