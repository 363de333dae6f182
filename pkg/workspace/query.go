package workspace

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Unused returns every project with zero dependents, in enumeration
// order: nothing in the workspace declares a path dependency on them.
func (r *Registry) Unused() []*Project {
	var out []*Project
	for _, p := range r.Projects() {
		if len(p.Dependents) == 0 {
			out = append(out, p)
		}
	}
	return out
}

// Consumer pairs a project with its sole dependent.
type Consumer struct {
	Project   *Project
	Dependent *Project
}

// SingleConsumers returns every project with exactly one dependent, in
// enumeration order. Removing the dependent would orphan the project,
// which makes these candidates for an over-centralization review.
func (r *Registry) SingleConsumers() []Consumer {
	var out []Consumer
	for _, p := range r.Projects() {
		if len(p.Dependents) == 1 {
			dep, _ := r.Project(p.Dependents[0])
			out = append(out, Consumer{Project: p, Dependent: dep})
		}
	}
	return out
}

// ResolveRoot resolves a traversal root selector against the registry.
// Matching is tried in order: exact directory path, exact directory base
// name, then unique substring of the directory path. No match returns
// ErrRootNotFound; a substring matching several projects returns
// ErrRootAmbiguous listing the candidates.
func (r *Registry) ResolveRoot(selector string) (*Project, error) {
	if p, ok := r.Project(filepath.Clean(selector)); ok {
		return p, nil
	}
	for _, p := range r.Projects() {
		if filepath.Base(p.Dir) == selector {
			return p, nil
		}
	}
	var matches []*Project
	for _, p := range r.Projects() {
		if strings.Contains(p.Dir, selector) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, selector)
	case 1:
		return matches[0], nil
	default:
		dirs := make([]string, len(matches))
		for i, p := range matches {
			dirs[i] = p.Dir
		}
		return nil, fmt.Errorf("%w: %q matches %s", ErrRootAmbiguous, selector, strings.Join(dirs, ", "))
	}
}

// WriteTree writes the depth-first dependency tree rooted at root, one
// project per line, indented two spaces per depth level:
//
//	* wezterm
//	  * term
//	    * termwiz
//
// Children are visited in declaration order. The traversal keeps no
// visited set: a shared subtree is printed once per path reaching it, and
// the graph must be acyclic for the traversal to terminate. That
// precondition matches the tool's audit purpose on workspaces Cargo
// itself would reject for cycles.
func (r *Registry) WriteTree(w io.Writer, root *Project) {
	r.writeTree(w, root.Dir, 0)
}

func (r *Registry) writeTree(w io.Writer, dir string, depth int) {
	p := r.projects[dir]
	fmt.Fprintf(w, "%s* %s\n", strings.Repeat("  ", depth), p.Dir)
	for _, dep := range p.Deps {
		r.writeTree(w, dep, depth+1)
	}
}
