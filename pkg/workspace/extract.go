package workspace

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// pathDepPattern captures the value of a path="..." assignment after all
// whitespace has been stripped from the line. The character class is
// deliberately conservative: uppercase letters or unusual path characters
// make the line a non-match and the dependency is silently skipped. This
// best-effort matching is a documented limitation, not full manifest
// parsing; tightening it would change behavior on edge-case manifests.
var pathDepPattern = regexp.MustCompile(`path="([a-z0-9_/.-]*)"`)

// ExtractPathDeps returns the resolved path dependencies declared in one
// manifest, in declaration order, duplicates preserved.
//
// Each line is trimmed, comment lines (leading #) are dropped, and the
// remaining whitespace is removed so `dep = { path = "../lib" }` collapses
// to a single matchable token. A captured value is resolved relative to
// the manifest's directory, normalized, and kept only if it names an
// existing directory; stale or unused declarations are dropped without
// error.
func ExtractPathDeps(manifestPath, text string) []string {
	dir := filepath.Dir(manifestPath)

	var deps []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		line = stripSpace(line)

		m := pathDepPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		dep := filepath.Clean(filepath.Join(dir, m[1]))
		if info, err := os.Stat(dep); err != nil || !info.IsDir() {
			continue
		}
		deps = append(deps, dep)
	}
	return deps
}

// stripSpace removes every whitespace character from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// PackageName reads the [package] name out of manifest text. The name is
// used only as a display label; project identity is always the directory.
// Returns "" if the manifest has no parseable package name.
func PackageName(text string) string {
	var m struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal([]byte(text), &m); err != nil {
		return ""
	}
	return m.Package.Name
}
