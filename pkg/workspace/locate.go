package workspace

import (
	"io/fs"
	"path/filepath"
	"slices"
)

// LocateManifests walks root recursively and returns the path of every
// file named exactly filename, including one at the root itself. The walk
// is lexical, so the result is stable for an unchanged tree.
//
// Directories whose base name appears in ignore are skipped entirely.
// Any other file-system error aborts the walk and is returned as-is; an
// unreadable subtree is never silently dropped.
func LocateManifests(root, filename string, ignore []string) ([]string, error) {
	var manifests []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && slices.Contains(ignore, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == filename {
			manifests = append(manifests, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return manifests, nil
}
