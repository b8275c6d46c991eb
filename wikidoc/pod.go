package wikidoc

import (
	"fmt"
	"strings"
)

// Renderer emits Pod for wikidoc parse trees. The zero value is ready to
// use; Keywords, when set, supplies substitutions for %%name%% spans.
// A Renderer holds no per-call state and is safe for concurrent use.
type Renderer struct {
	Keywords map[string]string
}

// Render walks the tree depth-first and emits Pod. It is a pure function
// of the tree: the ordered-list counter lives in the call, so concurrent
// renders and sibling lists cannot bleed into each other.
func (r *Renderer) Render(nodes []*Node) string {
	st := &podState{keywords: r.Keywords}
	for _, n := range nodes {
		if n.Kind == EmptyLine {
			continue
		}
		st.walk(n)
	}
	return st.b.String()
}

// Render emits Pod with no keyword substitutions.
func Render(nodes []*Node) string {
	var r Renderer
	return r.Render(nodes)
}

// Translate is the combined convenience: Render(Parse(text)).
func Translate(text string) string {
	return Render(Parse(text))
}

type podState struct {
	b        strings.Builder
	counter  int
	keywords map[string]string
}

// podEntry is one row of the per-kind dispatch table: fixed or computed
// opening text, fixed closing text, and an optional content handler for
// leaf text. A kind without a handler emits its text verbatim.
type podEntry struct {
	open    string
	openFn  func(st *podState, n *Node) string
	close   string
	content func(st *podState, text string) string
}

var podTable [kindCount]podEntry

func init() {
	entries := map[Kind]podEntry{
		Header: {
			openFn: func(_ *podState, n *Node) string {
				level := n.Level
				if level > 4 {
					level = 4
				}
				return fmt.Sprintf("=head%d ", level)
			},
			close: "\n\n",
		},
		UnorderedList: {open: "=over\n\n", close: "=back\n\n"},
		BulletItem:    {open: "=item *\n\n", close: "\n\n"},
		OrderedList: {
			openFn: func(st *podState, _ *Node) string {
				st.counter = 1
				return "=over\n\n"
			},
			close: "=back\n\n",
		},
		NumberedItem: {
			openFn: func(st *podState, _ *Node) string {
				s := fmt.Sprintf("=item %d.\n\n", st.counter)
				st.counter++
				return s
			},
			close: "\n\n",
		},
		Preformat:    {close: "\n"},
		IndentedLine: {close: "\n"},
		Paragraph:    {close: "\n\n"},
		PlainLine:    {close: "\n"},
		EmptyLine:    {},
		RegularText:  {content: escapeText},
		WhiteSpace:   {},
		EscapedChar:  {},
		InlineCode:   {open: "C<", close: ">", content: escapeReserved},
		BoldText:     {open: "B<", close: ">"},
		ItalicText:   {open: "I<", close: ">"},
		Parens:       {open: "(", close: ")"},
		KeyWord:      {content: expandKeyword},
		LinkContent:  {open: "L<", close: ">"},
		LinkLabel:    {close: "|"},
		LinkTarget:   {},
	}

	// The kind set is closed; a missing row is a programming error and is
	// caught here rather than per node at render time.
	if len(entries) != kindCount {
		panic(fmt.Sprintf("wikidoc: pod table covers %d of %d node kinds", len(entries), kindCount))
	}
	for k, e := range entries {
		podTable[k] = e
	}
}

func (st *podState) walk(n *Node) {
	e := &podTable[n.Kind]

	if e.openFn != nil {
		st.b.WriteString(e.openFn(st, n))
	} else {
		st.b.WriteString(e.open)
	}

	if container[n.Kind] {
		for _, c := range n.Nodes {
			st.walk(c)
		}
	} else if e.content != nil {
		st.b.WriteString(e.content(st, n.Text))
	} else {
		st.b.WriteString(n.Text)
	}

	st.b.WriteString(e.close)
}

// escapeText renders a plain text leaf: backslash escapes collapse first,
// then the four characters reserved by Pod are replaced with their escape
// codes. The order is deliberate, so `\>` unescapes to `>` and is still
// substituted to E<gt>; a backslash protects against markup, not against
// the reserved-character pass.
func escapeText(_ *podState, text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			i++
			c = text[i]
		}
		writeEscaped(&b, c)
	}
	return b.String()
}

// escapeReserved substitutes the reserved characters without touching
// backslashes; code span content is literal.
func escapeReserved(_ *podState, text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		writeEscaped(&b, text[i])
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, c byte) {
	switch c {
	case '>':
		b.WriteString("E<gt>")
	case '<':
		b.WriteString("E<lt>")
	case '|':
		b.WriteString("E<verbar>")
	case '/':
		b.WriteString("E<sol>")
	default:
		b.WriteByte(c)
	}
}

func expandKeyword(st *podState, name string) string {
	if val, ok := st.keywords[name]; ok {
		return escapeReserved(nil, val)
	}
	return "%%" + name + "%%"
}
