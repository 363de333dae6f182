// Package workspace builds the path-dependency graph of a multi-crate
// Cargo workspace and answers structural queries over it.
//
// # Pipeline
//
// Construction is a single synchronous pass:
//
//	manifests, _ := workspace.LocateManifests(root, "Cargo.toml", nil)
//	reg, err := workspace.Build(root, workspace.Options{})
//
// [Build] locates every manifest, registers one [Project] per manifest
// directory, then links projects by resolving each declared `path = "..."`
// dependency against the registry. Edges are always recorded in pairs: the
// target appears in the source's Deps and the source in the target's
// Dependents. A dependency path that resolves to an existing directory
// without a registered manifest is a fatal construction error
// ([ErrUnknownDependency]); the registry is never queried half-built.
//
// # Queries
//
// After Build returns, the registry is read-only:
//
//	reg.Unused()           // projects nothing depends on
//	reg.SingleConsumers()  // projects with exactly one dependent
//	reg.WriteTree(w, p)    // depth-first dependency tree rooted at p
//
// WriteTree performs unbounded recursion and requires an acyclic graph;
// see its documentation.
//
// # Parsing surface
//
// Only `path="<value>"` assignments are consumed from manifests, matched
// line by line with a deliberately conservative pattern. See
// [ExtractPathDeps] for the exact rules and known misses. The full TOML
// grammar is read only to pick up the display name in `[package] name`.
package workspace
