// Package ignorefile loads the per-root ignore rules consulted while
// packaging a deployment.
//
// Each deployment root may carry a single .orbitignore file and an
// optional .orbit.yaml project config whose package section contributes
// extra exclude patterns. The loader reads both once per packaging
// operation and compiles them into an ignore.Spec; a missing ignore file
// is a normal state that yields a nil spec (nothing excluded).
//
// Usage:
//
//	spec, err := ignorefile.Load(root)
//	if err != nil {
//	    return err
//	}
//	if spec.Match(relPath, false) {
//	    // omit from archive
//	}
//
// Callers that package many roots in one process can hold a Cache, which
// keeps compiled specs in an LRU keyed by root directory.
package ignorefile
