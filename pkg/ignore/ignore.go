package ignore

import (
	"strings"
)

// Spec is an ordered, immutable list of compiled ignore rules for one
// deployment root. A nil Spec is valid and matches nothing, which lets
// callers pass through the "no ignore file" case without a check.
type Spec struct {
	rules []rule
}

// MatchResult describes the rule that decided a match.
type MatchResult struct {
	// Rule is the cleaned pattern of the last matching rule.
	// Empty when Matched is false.
	Rule string

	// Raw is the original source line of that rule, before comment
	// stripping and escape handling.
	Raw string

	// Line is the rule's line number in the source (1-indexed).
	// Zero when Matched is false.
	Line int

	// Ignored is the final decision after negation: true means the path
	// is excluded from the archive.
	Ignored bool

	// Matched reports whether any rule matched at all. When false the
	// path is included by default.
	Matched bool

	// Negated reports whether the decisive rule was a negation, i.e.
	// the path was re-included after an earlier exclusion.
	Negated bool
}

// Compile parses raw ignore-file content into a Spec. Content is
// normalized first (BOM stripped, CRLF/CR line endings folded to LF).
// Compilation never fails: comment and blank lines produce no rule and
// malformed glob fragments degrade to literal matching.
func Compile(content []byte) *Spec {
	content = normalizeContent(content)
	return CompileLines(strings.Split(string(content), "\n"))
}

// CompileLines compiles already-split lines into a Spec.
// Lines are processed in order; rule order is the only precedence.
func CompileLines(lines []string) *Spec {
	s := &Spec{rules: make([]rule, 0, len(lines))}
	for i, line := range lines {
		if r := parseLine(line, i+1); r != nil {
			s.rules = append(s.rules, *r)
		}
	}
	return s
}

// Match reports whether relPath should be excluded from the archive.
// relPath is relative to the deployment root, using forward slashes.
// isDir indicates whether the path is a directory. Safe for concurrent
// use; a compiled Spec is never mutated.
func (s *Spec) Match(relPath string, isDir bool) bool {
	return s.MatchWithReason(relPath, isDir).Ignored
}

// MatchFile reports whether a regular file at relPath is excluded.
func (s *Spec) MatchFile(relPath string) bool {
	return s.Match(relPath, false)
}

// MatchWithReason evaluates every rule in source order and returns the
// decisive one. Later rules override earlier ones, so a negation after a
// broad exclusion selectively re-includes a path.
func (s *Spec) MatchWithReason(relPath string, isDir bool) MatchResult {
	var result MatchResult
	if s == nil || len(s.rules) == 0 {
		return result
	}

	path := normalizePath(relPath)
	if path == "" {
		return result
	}
	pathSegs := splitPath(path)

	for i := range s.rules {
		r := &s.rules[i]
		if matchRule(r, pathSegs, isDir) {
			result = MatchResult{
				Rule:    r.pattern,
				Raw:     r.raw,
				Line:    r.line,
				Ignored: !r.negated,
				Matched: true,
				Negated: r.negated,
			}
		}
	}
	return result
}

// RuleCount returns the number of compiled rules.
func (s *Spec) RuleCount() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}
