package ignore

import (
	"bytes"
	"strings"
)

// normalizePath normalizes a candidate path for matching. Callers are
// expected to hand in root-relative, forward-slash paths; stray leading
// "./", doubled slashes, and leading/trailing slashes are cleaned up so
// host-convention paths still behave.
func normalizePath(p string) string {
	if strings.Contains(p, "//") {
		var b strings.Builder
		b.Grow(len(p))
		prevSlash := false
		for i := 0; i < len(p); i++ {
			if p[i] == '/' {
				if !prevSlash {
					b.WriteByte('/')
				}
				prevSlash = true
				continue
			}
			b.WriteByte(p[i])
			prevSlash = false
		}
		p = b.String()
	}

	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")
	return p
}

// normalizeContent prepares raw ignore-file content for line splitting.
// Strips a UTF-8 BOM and normalizes CRLF/CR line endings to LF.
func normalizeContent(content []byte) []byte {
	if len(content) == 0 {
		return content
	}
	for bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}) {
		content = content[3:]
	}
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
	return content
}

// splitPath splits a normalized path into segments, dropping any empty
// parts left by edge slashes.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}
