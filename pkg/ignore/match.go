package ignore

import (
	"strings"
)

// matchRule checks one rule against a normalized, pre-split path.
func matchRule(r *rule, pathSegs []string, isDir bool) bool {
	if len(pathSegs) == 0 {
		return false
	}

	if r.anchored {
		return matchFrom(r.segments, pathSegs, isDir, r.dirOnly)
	}

	// Basename rule: a single segment tried against every path component.
	// A hit on a non-terminal component means the path sits inside a
	// matched directory, so it matches for files and directories alike.
	seg := r.segments[0]
	last := len(pathSegs) - 1
	for i, p := range pathSegs {
		if !matchSegment(seg, p) {
			continue
		}
		if i < last {
			return true
		}
		if r.dirOnly {
			return isDir
		}
		return true
	}
	return false
}

// matchFrom matches pattern segments against path segments from the left.
// A pattern that consumes only a leading portion of the path has matched
// an ancestor directory, which excludes everything beneath it.
func matchFrom(pat []segment, path []string, isDir, dirOnly bool) bool {
	if len(pat) == 0 {
		if len(path) > 0 {
			return true // inside a matched directory
		}
		return !dirOnly || isDir
	}

	if pat[0].doubleStar {
		if len(pat) == 1 {
			// A trailing ** matches everything inside the directory,
			// not the directory itself.
			return len(path) > 0
		}
		for i := 0; i <= len(path); i++ {
			if matchFrom(pat[1:], path[i:], isDir, dirOnly) {
				return true
			}
		}
		return false
	}

	if len(path) == 0 {
		return false
	}
	if !matchSegment(pat[0], path[0]) {
		return false
	}
	return matchFrom(pat[1:], path[1:], isDir, dirOnly)
}

// matchSegment matches one pattern segment against one path component.
func matchSegment(seg segment, pathSeg string) bool {
	if seg.doubleStar {
		return true
	}
	if !seg.wildcard {
		return seg.value == pathSeg
	}
	return matchGlob(seg.value, pathSeg)
}

// matchGlob matches a glob pattern against a single path component.
// Supports * (any run of characters), ? (exactly one character),
// [...] character classes, and \ escapes.
func matchGlob(pattern, s string) bool {
	// Fast path: bare star matches everything.
	if pattern == "*" {
		return true
	}

	// Fast paths for prefix* and *suffix without other metacharacters.
	if !strings.ContainsAny(pattern, `?[\`) && strings.Count(pattern, "*") == 1 {
		if strings.HasSuffix(pattern, "*") {
			return strings.HasPrefix(s, pattern[:len(pattern)-1])
		}
		if strings.HasPrefix(pattern, "*") {
			return strings.HasSuffix(s, pattern[1:])
		}
	}

	return matchGlobRecursive(pattern, s)
}

// matchGlobRecursive is the general glob matcher. Unterminated character
// classes degrade to a literal [ so a malformed pattern never raises.
func matchGlobRecursive(pattern, s string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// Collapse consecutive stars.
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if matchGlobRecursive(pattern, s[i:]) {
					return true
				}
			}
			return false

		case '?':
			if len(s) == 0 {
				return false
			}
			pattern = pattern[1:]
			s = s[1:]

		case '[':
			advance, matched, ok := matchClass(pattern, s)
			if !ok {
				// Treat the [ as a literal character.
				if len(s) == 0 || s[0] != '[' {
					return false
				}
				pattern = pattern[1:]
				s = s[1:]
				continue
			}
			if len(s) == 0 || !matched {
				return false
			}
			pattern = pattern[advance:]
			s = s[1:]

		case '\\':
			if len(pattern) > 1 {
				pattern = pattern[1:]
			}
			if len(s) == 0 || pattern[0] != s[0] {
				return false
			}
			pattern = pattern[1:]
			s = s[1:]

		default:
			if len(s) == 0 || pattern[0] != s[0] {
				return false
			}
			pattern = pattern[1:]
			s = s[1:]
		}
	}
	return len(s) == 0
}

// matchClass matches the first byte of s against the character class at
// the start of pattern. Returns how many pattern bytes the class spans,
// whether the byte matched, and whether a well-formed class was found.
// Supports [!...] and [^...] negation and lo-hi ranges.
func matchClass(pattern, s string) (advance int, matched, ok bool) {
	end := findClassEnd(pattern)
	if end < 0 {
		return 0, false, false
	}
	if len(s) == 0 {
		return end + 1, false, true
	}
	c := s[0]

	i := 1
	negate := false
	if pattern[i] == '!' || pattern[i] == '^' {
		negate = true
		i++
	}
	for i < end {
		var lo byte
		if pattern[i] == '\\' && i+1 < end {
			i++
		}
		lo = pattern[i]
		i++

		hi := lo
		if i+1 < end && pattern[i] == '-' {
			i++
			if pattern[i] == '\\' && i+1 < end {
				i++
			}
			hi = pattern[i]
			i++
		}
		if lo <= c && c <= hi {
			matched = true
		}
	}
	if negate {
		matched = !matched
	}
	return end + 1, matched, true
}

// findClassEnd locates the closing bracket of a character class.
// A ] directly after [ (or after the negation marker) is a literal
// member, as is any escaped ]. Returns -1 for an unterminated class.
func findClassEnd(pattern string) int {
	i := 1
	if i < len(pattern) && (pattern[i] == '!' || pattern[i] == '^') {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for ; i < len(pattern); i++ {
		if pattern[i] == '\\' {
			i++
			continue
		}
		if pattern[i] == ']' {
			return i
		}
	}
	return -1
}
