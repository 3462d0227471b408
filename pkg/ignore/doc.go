// Package ignore implements the ignore-pattern engine used when packaging
// a deployment root into an upload archive.
//
// It follows the gitignore pattern dialect with one packaging-friendly
// extension: a # preceded by unescaped whitespace starts an inline
// comment, so rule files can carry explanations on the same line as a
// pattern. A # embedded in a filename (file#name.txt) stays literal.
//
// Features:
//   - Wildcard patterns (*, ?, **)
//   - Character classes ([abc], [0-9], [!x])
//   - Negation patterns (!important.log)
//   - Directory-only patterns (build/)
//   - Anchored patterns (src/build)
//   - Backslash escapes for literal #, ! and trailing spaces
//
// Usage:
//
//	spec := ignore.Compile(content)
//	if spec.Match("dist/bundle.js", false) {
//	    // omit from archive
//	}
//
// A Spec is immutable after Compile and safe to share across goroutines.
// A nil Spec matches nothing, so callers can pass through the "no ignore
// file" case without a check.
package ignore
