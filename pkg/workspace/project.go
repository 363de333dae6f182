package workspace

import (
	"errors"
	"path/filepath"
)

var (
	// ErrDuplicateProject is returned by [Registry.Register] when two
	// manifests share a containing directory. Directories are project
	// identities and must be unique.
	ErrDuplicateProject = errors.New("duplicate project directory")

	// ErrUnknownDependency is returned by [Build] when a declared path
	// dependency resolves to an existing directory that holds no
	// registered manifest. The graph cannot be queried half-built.
	ErrUnknownDependency = errors.New("cannot find dependency")

	// ErrRootNotFound is returned by [Registry.ResolveRoot] when no
	// project matches the requested root.
	ErrRootNotFound = errors.New("root project not found")

	// ErrRootAmbiguous is returned by [Registry.ResolveRoot] when a
	// substring matches more than one project.
	ErrRootAmbiguous = errors.New("root selector is ambiguous")
)

// Project is a node in the workspace graph: one directory containing one
// manifest file, identified by its normalized directory path.
//
// Deps and Dependents hold directory keys rather than pointers, so the
// registry map is the single owner of every node even when the declared
// graph is cyclic. Deps preserves declaration order and keeps duplicates
// (a dependency declared twice yields two edges); Dependents lists reverse
// edges in the order the linker discovered them.
type Project struct {
	Dir      string // normalized containing directory; unique identity
	Manifest string // manifest file path, for reference only
	Name     string // [package] name if present; display only

	Deps       []string
	Dependents []string
}

// Registry is the arena of discovered projects, keyed by normalized
// directory. Enumeration order is registration order, which [Build] makes
// stable for a fixed directory tree. After Build returns, the registry
// must be treated as read-only.
type Registry struct {
	dirs     []string
	projects map[string]*Project
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{projects: make(map[string]*Project)}
}

// Register creates a project for the given manifest path. The project's
// directory is the normalized parent of the manifest.
func (r *Registry) Register(manifestPath string) (*Project, error) {
	dir := filepath.Clean(filepath.Dir(manifestPath))
	if _, exists := r.projects[dir]; exists {
		return nil, ErrDuplicateProject
	}
	p := &Project{Dir: dir, Manifest: manifestPath}
	r.projects[dir] = p
	r.dirs = append(r.dirs, dir)
	return p, nil
}

// Project looks up a project by its exact normalized directory.
func (r *Registry) Project(dir string) (*Project, bool) {
	p, ok := r.projects[dir]
	return p, ok
}

// Projects returns all projects in enumeration order.
func (r *Registry) Projects() []*Project {
	out := make([]*Project, len(r.dirs))
	for i, dir := range r.dirs {
		out[i] = r.projects[dir]
	}
	return out
}

// Len returns the number of registered projects.
func (r *Registry) Len() int { return len(r.dirs) }

// link records the edge p -> dep in both directions. Both projects must
// already be registered; Build enforces this.
func link(p, dep *Project) {
	p.Deps = append(p.Deps, dep.Dir)
	dep.Dependents = append(dep.Dependents, p.Dir)
}
