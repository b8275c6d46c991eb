package wikidoc

import "strings"

// parseInline applies the inline grammar to a block's text payload,
// repeatedly matching the highest-priority alternative at the scan
// position until the text is exhausted.
//
// The grammar cannot fail: when a delimiter rule matches its opening
// character but no balancing close exists, only that single character is
// consumed as regular text and scanning resumes after it, so every step
// makes progress.
func parseInline(s string) []*Node {
	var nodes []*Node
	for i := 0; i < len(s); {
		if j := skipSpace(s, i); j > i {
			nodes = append(nodes, leaf(WhiteSpace, s[i:j]))
			i = j
			continue
		}

		n, size := inlineSpan(s[i:])
		if n == nil {
			// Plain word: the longest run of non-whitespace
			// characters. Spans only open at the start of a run, so
			// markers inside a word carry no meaning.
			j := i
			for j < len(s) && !isSpace(s[j]) {
				j++
			}
			n, size = leaf(RegularText, s[i:j]), j-i
		}
		nodes = append(nodes, n)
		i += size
	}
	return nodes
}

// inlineSpan tries the delimited alternatives at the start of s, in
// priority order. It returns nil when s does not begin with a span opener;
// a span opener whose extraction fails yields the opening character alone.
func inlineSpan(s string) (*Node, int) {
	switch s[0] {
	case '{':
		if inner, size, ok := extractBalanced(s, '{', '}'); ok {
			return leaf(InlineCode, inner), size
		}

	case '*':
		if inner, size, ok := extractPair(s, '*'); ok {
			return parent(BoldText, parseInline(inner)), size
		}

	case '~':
		if inner, size, ok := extractPair(s, '~'); ok {
			return parent(ItalicText, parseInline(inner)), size
		}

	case '%':
		if !strings.HasPrefix(s, "%%") {
			return nil, 0
		}
		if inner, size, ok := extractTag(s, "%%"); ok {
			return leaf(KeyWord, inner), size
		}

	case '[':
		if inner, size, ok := extractBalanced(s, '[', ']'); ok {
			return link(inner), size
		}

	case 'E':
		if len(s) < 2 || s[1] != '<' {
			return nil, 0
		}
		if inner, size, ok := extractBalanced(s[1:], '<', '>'); ok {
			return leaf(EscapedChar, "E<"+inner+">"), size + 1
		}

	case '(':
		if inner, size, ok := extractBalanced(s, '(', ')'); ok {
			return parent(Parens, parseInline(inner)), size
		}

	default:
		return nil, 0
	}
	return leaf(RegularText, s[:1]), 1
}

// link splits bracket content once on the first unescaped '|'. With a
// separator the left side is a label, itself inline-parsed, and the right
// side the literal target; without one the whole content is the target.
func link(inner string) *Node {
	sep := -1
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '\\':
			i++
		case '|':
			sep = i
		}
		if sep >= 0 {
			break
		}
	}

	if sep < 0 {
		return parent(LinkContent, []*Node{leaf(LinkTarget, inner)})
	}
	return parent(LinkContent, []*Node{
		parent(LinkLabel, parseInline(inner[:sep])),
		leaf(LinkTarget, inner[sep+1:]),
	})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
