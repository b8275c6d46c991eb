package wikidoc

import "strings"

// extractBalanced scans s, which must begin with open, for the close that
// matches it, tracking nesting depth of identical open/close pairs. It
// returns the text between the pair and the total number of bytes consumed
// including both delimiters. A backslash-escaped delimiter carries no
// meaning for the scan. ok is false when no matching close exists; in that
// case nothing is consumed.
func extractBalanced(s string, open, close byte) (inner string, n int, ok bool) {
	if len(s) == 0 || s[0] != open {
		return "", 0, false
	}

	depth := 1
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case close:
			depth--
			if depth == 0 {
				return s[1:i], i + 1, true
			}
		case open:
			depth++
		}
	}
	return "", 0, false
}

// extractPair handles quote-like spans where the opening and closing
// delimiters are the same single byte. Such pairs cannot nest, and a
// backslash-escaped delimiter does not close the span.
func extractPair(s string, delim byte) (inner string, n int, ok bool) {
	if len(s) == 0 || s[0] != delim {
		return "", 0, false
	}

	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case delim:
			return s[1:i], i + 1, true
		}
	}
	return "", 0, false
}

// extractTag handles spans delimited by a multi-byte tag on both sides,
// such as %%...%%.
func extractTag(s, tag string) (inner string, n int, ok bool) {
	if !strings.HasPrefix(s, tag) {
		return "", 0, false
	}

	end := strings.Index(s[len(tag):], tag)
	if end < 0 {
		return "", 0, false
	}
	return s[len(tag) : len(tag)+end], end + 2*len(tag), true
}
