package wikidoc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML projects the same parse tree onto an HTML fragment. It exists
// for hosts that preview wikidoc outside a Pod toolchain; the structure
// mirrors the Pod renderer (same header clamp, same keyword substitution)
// while character escaping is left to the HTML serializer.
func (r *Renderer) RenderHTML(nodes []*Node) string {
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		if n.Kind == EmptyLine {
			continue
		}
		r.appendHTML(root, n)
	}

	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		// strings.Builder cannot fail; a render error here means the
		// tree construction above is broken.
		panic("wikidoc: html render: " + err.Error())
	}
	return b.String()
}

// RenderHTML emits HTML with no keyword substitutions.
func RenderHTML(nodes []*Node) string {
	var r Renderer
	return r.RenderHTML(nodes)
}

var headerAtoms = [4]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4}

func (r *Renderer) appendHTML(dst *html.Node, n *Node) {
	switch n.Kind {
	case Header:
		level := n.Level
		if level > 4 {
			level = 4
		}
		if level < 1 {
			level = 1
		}
		r.children(element(dst, headerAtoms[level-1]), n)

	case UnorderedList:
		r.children(element(dst, atom.Ul), n)
	case OrderedList:
		r.children(element(dst, atom.Ol), n)
	case BulletItem, NumberedItem:
		r.children(element(dst, atom.Li), n)

	case Preformat:
		pre := element(dst, atom.Pre)
		lines := make([]string, 0, len(n.Nodes))
		for _, c := range n.Nodes {
			lines = append(lines, c.Text)
		}
		text(pre, strings.Join(lines, "\n"))

	case Paragraph, PlainLine:
		r.children(element(dst, atom.P), n)

	case BoldText:
		r.children(element(dst, atom.B), n)
	case ItalicText:
		r.children(element(dst, atom.I), n)
	case InlineCode:
		text(element(dst, atom.Code), n.Text)

	case Parens:
		text(dst, "(")
		r.children(dst, n)
		text(dst, ")")

	case LinkContent:
		target := n.Nodes[len(n.Nodes)-1]
		a := element(dst, atom.A)
		a.Attr = []html.Attribute{{Key: "href", Val: target.Text}}
		if len(n.Nodes) == 1 {
			text(a, target.Text)
		} else {
			r.children(a, n.Nodes[0])
		}

	case LinkLabel:
		r.children(dst, n)
	case LinkTarget:
		text(dst, n.Text)

	case RegularText:
		text(dst, unescapeText(n.Text))
	case WhiteSpace, IndentedLine:
		text(dst, n.Text)
	case EscapedChar:
		text(dst, decodeEscape(n.Text))
	case KeyWord:
		if val, ok := r.Keywords[n.Text]; ok {
			text(dst, val)
		} else {
			text(dst, "%%"+n.Text+"%%")
		}

	case EmptyLine:
		// dropped before render; harmless inside containers

	default:
		panic("wikidoc: unhandled node kind " + n.Kind.String())
	}
}

func (r *Renderer) children(dst *html.Node, n *Node) {
	for _, c := range n.Nodes {
		r.appendHTML(dst, c)
	}
}

func element(dst *html.Node, a atom.Atom) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	dst.AppendChild(n)
	return n
}

func text(dst *html.Node, s string) {
	if s == "" {
		return
	}
	dst.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func unescapeText(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

var escapeCodes = map[string]string{
	"gt":     ">",
	"lt":     "<",
	"verbar": "|",
	"sol":    "/",
	"amp":    "&",
	"quot":   `"`,
	"apos":   "'",
}

// decodeEscape maps an E<...> passthrough leaf back to its character for
// HTML output, where the serializer handles escaping itself. Unknown codes
// degrade to their inner text.
func decodeEscape(s string) string {
	code := strings.TrimSuffix(strings.TrimPrefix(s, "E<"), ">")
	if c, ok := escapeCodes[code]; ok {
		return c
	}
	return code
}
