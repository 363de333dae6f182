package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractPathDeps(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"app", "lib", "Mixed-Case"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	manifest := filepath.Join(root, "app", "Cargo.toml")
	lib := filepath.Join(root, "lib")

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "InlineTableWithSpaces",
			text: `dep = { path = "../lib" }`,
			want: []string{lib},
		},
		{
			name: "CompactAssignment",
			text: `dep={path="../lib"}`,
			want: []string{lib},
		},
		{
			name: "CommentLineSkipped",
			text: "# dep = { path = \"../lib\" }\n",
			want: nil,
		},
		{
			name: "MissingDirectoryDropped",
			text: `dep = { path = "../nosuchdir" }`,
			want: nil,
		},
		{
			name: "UppercasePathMissed",
			// Known permissiveness gap: the conservative character
			// class rejects uppercase even when the directory exists.
			text: `dep = { path = "../Mixed-Case" }`,
			want: nil,
		},
		{
			name: "DuplicateDeclarationKept",
			text: "a = { path = \"../lib\" }\nb = { path = \"../lib\" }\n",
			want: []string{lib, lib},
		},
		{
			name: "VersionDependencyIgnored",
			text: `serde = "1.0"`,
			want: nil,
		},
		{
			name: "FullSection",
			text: "[package]\nname = \"app\"\n\n[dependencies]\nlib = { path = \"../lib\", version = \"0.1\" }\n",
			want: []string{lib},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPathDeps(manifest, tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("dep[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Present", "[package]\nname = \"term\"\nversion = \"0.1.0\"\n", "term"},
		{"Absent", "[dependencies]\nserde = \"1.0\"\n", ""},
		{"Invalid", "not toml at all {{", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackageName(tt.text); got != tt.want {
				t.Errorf("PackageName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripSpace(t *testing.T) {
	if got := stripSpace("dep = { path = \"../lib\" }"); got != `dep={path="../lib"}` {
		t.Errorf("stripSpace = %q", got)
	}
	if got := stripSpace("a\tb c"); got != "abc" {
		t.Errorf("stripSpace = %q", got)
	}
}
