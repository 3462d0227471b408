package ignore

import (
	"strings"
)

// rule is a single compiled ignore pattern. Rules preserve source order;
// order is the only source of precedence between them.
type rule struct {
	raw      string    // original source line, kept for diagnostics
	pattern  string    // cleaned pattern text after comment/escape handling
	segments []segment // pattern split on "/" for the matcher
	line     int       // line number in the source (1-indexed)
	negated  bool      // pattern started with !
	dirOnly  bool      // pattern ended with /
	anchored bool      // pattern contains an internal /, matched from the root
}

// segment is one slash-separated part of a pattern.
type segment struct {
	value      string // literal or glob text (empty for **)
	wildcard   bool   // contains *, ?, [ or \ and needs glob matching
	doubleStar bool   // is **, matches zero or more path segments
}

// parseLine compiles one source line into a rule.
// Returns nil for blank lines, comments, and lines that reduce to nothing.
func parseLine(raw string, lineNum int) *rule {
	// Full-line comment: first non-blank character is #. Checked before
	// any other processing so the rest of the line is never inspected.
	trimmed := strings.TrimLeft(raw, " \t")
	if trimmed == "" || trimmed[0] == '#' {
		return nil
	}

	line := stripInlineComment(raw)
	line = trimTrailingWhitespace(line)
	if line == "" {
		return nil
	}

	r := &rule{raw: raw, line: lineNum}

	// Leading \! and \# escape the character without its usual meaning.
	// A bare ! flips the rule to a negation.
	if strings.HasPrefix(line, `\!`) || strings.HasPrefix(line, `\#`) {
		line = line[1:]
	} else if strings.HasPrefix(line, "!") {
		r.negated = true
		line = line[1:]
		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}
	}

	// An unescaped trailing / restricts the rule to directories and
	// their contents.
	if endsUnescaped(line, '/') {
		r.dirOnly = true
		line = line[:len(line)-1]
	}

	// A leading slash anchors without contributing a segment. Any other
	// remaining slash also anchors the rule to the root.
	if strings.HasPrefix(line, "/") {
		r.anchored = true
		line = line[1:]
	} else if strings.Contains(line, "/") {
		r.anchored = true
	}
	if line == "" {
		return nil
	}

	r.pattern = line
	r.segments = parseSegments(line)
	if len(r.segments) == 0 {
		return nil
	}
	return r
}

// stripInlineComment removes an inline comment from a line. A # starts a
// comment only when the preceding character is an unescaped space or tab;
// a # glued to prior text (file#name.txt) is a literal pattern character.
// Implemented as a character scanner so backslash escapes stay correct.
func stripInlineComment(line string) string {
	escaped := false
	prevBlank := false
	for i := 0; i < len(line); i++ {
		if escaped {
			escaped = false
			prevBlank = false
			continue
		}
		switch line[i] {
		case '\\':
			escaped = true
			prevBlank = false
		case ' ', '\t':
			prevBlank = true
		case '#':
			if prevBlank {
				return line[:i]
			}
			prevBlank = false
		default:
			prevBlank = false
		}
	}
	return line
}

// trimTrailingWhitespace removes trailing spaces and tabs, honoring a
// backslash escape on the last space:
//   - "foo "    -> "foo"
//   - "foo\ "   -> "foo "  (escaped space preserved, backslash consumed)
//   - "foo\\ "  -> "foo\\" (escaped backslash, space stripped)
func trimTrailingWhitespace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if end == len(line) {
		return line
	}

	// Count backslashes immediately before the whitespace run. An odd
	// count means the first trailing space is escaped.
	bs := 0
	for i := end - 1; i >= 0 && line[i] == '\\'; i-- {
		bs++
	}
	if bs%2 == 1 && line[end] == ' ' {
		return line[:end-1] + " "
	}
	return line[:end]
}

// endsUnescaped reports whether s ends with c not preceded by an odd
// number of backslashes.
func endsUnescaped(s string, c byte) bool {
	if len(s) == 0 || s[len(s)-1] != c {
		return false
	}
	bs := 0
	for i := len(s) - 2; i >= 0 && s[i] == '\\'; i-- {
		bs++
	}
	return bs%2 == 0
}

// parseSegments splits a pattern on "/" and classifies each segment.
// Empty segments from doubled slashes are dropped.
func parseSegments(pattern string) []segment {
	parts := strings.Split(pattern, "/")
	segments := make([]segment, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		seg := segment{value: part}
		if part == "**" {
			seg.doubleStar = true
			seg.value = ""
		} else if strings.ContainsAny(part, `*?[\`) {
			// Escapes and unterminated classes are resolved during
			// matching; an unparseable token degrades to a literal there.
			seg.wildcard = true
		}
		segments = append(segments, seg)
	}
	return segments
}

// String returns a debug representation of a rule.
func (r *rule) String() string {
	var flags []string
	if r.negated {
		flags = append(flags, "negated")
	}
	if r.dirOnly {
		flags = append(flags, "dirOnly")
	}
	if r.anchored {
		flags = append(flags, "anchored")
	}
	if len(flags) == 0 {
		return r.pattern
	}
	return r.pattern + " [" + strings.Join(flags, ",") + "]"
}
