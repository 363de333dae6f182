package workspace

import (
	"fmt"
	"os"
)

// DefaultManifest is the manifest filename discovered when Options.Manifest
// is empty.
const DefaultManifest = "Cargo.toml"

// DefaultIgnore lists directories skipped during discovery when
// Options.Ignore is nil. Cargo build output can contain vendored copies of
// Cargo.toml that are not workspace members.
var DefaultIgnore = []string{".git", "target"}

// Options configures graph construction.
type Options struct {
	// Manifest is the manifest filename to discover (default "Cargo.toml").
	Manifest string

	// Ignore lists directory base names skipped during discovery.
	// Nil means DefaultIgnore; use an empty slice to ignore nothing.
	Ignore []string

	// Logf, when set, receives debug messages during construction.
	Logf func(format string, args ...any)
}

func (o *Options) setDefaults() {
	if o.Manifest == "" {
		o.Manifest = DefaultManifest
	}
	if o.Ignore == nil {
		o.Ignore = DefaultIgnore
	}
	if o.Logf == nil {
		o.Logf = func(string, ...any) {}
	}
}

// Build discovers every manifest under root and returns the fully linked
// registry. All projects are registered before any edge is created, so a
// dependency path that resolves outside the registry is a construction
// error, wrapping [ErrUnknownDependency], not a dangling edge.
//
// The returned registry must be treated as immutable.
func Build(root string, opts Options) (*Registry, error) {
	opts.setDefaults()

	manifests, err := LocateManifests(root, opts.Manifest, opts.Ignore)
	if err != nil {
		return nil, fmt.Errorf("locate manifests in %s: %w", root, err)
	}
	opts.Logf("located %d manifests under %s", len(manifests), root)

	reg := NewRegistry()
	for _, m := range manifests {
		if _, err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("register %s: %w", m, err)
		}
	}

	for _, p := range reg.Projects() {
		data, err := os.ReadFile(p.Manifest)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p.Manifest, err)
		}
		text := string(data)
		p.Name = PackageName(text)

		for _, dep := range ExtractPathDeps(p.Manifest, text) {
			target, ok := reg.Project(dep)
			if !ok {
				return nil, fmt.Errorf("%w: %s (declared in %s)", ErrUnknownDependency, dep, p.Manifest)
			}
			link(p, target)
			opts.Logf("linked %s -> %s", p.Dir, target.Dir)
		}
	}

	return reg, nil
}
