package wikidoc

import "strings"

// Parse converts raw wikidoc text into an ordered sequence of block nodes.
// It is total: any input produces a tree, with unrecognized constructs
// degrading to paragraphs of plain text. Empty lines are used internally as
// block terminators and do not appear in the result.
func Parse(text string) []*Node {
	p := &parser{lines: splitLines(text)}

	var nodes []*Node
	for !p.done() {
		nodes = append(nodes, p.block())
	}

	// Top-level empty lines only terminate blocks; drop them.
	out := nodes[:0]
	for _, n := range nodes {
		if n.Kind != EmptyLine {
			out = append(out, n)
		}
	}
	return out
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type parser struct {
	lines []string
	pos   int
}

func (p *parser) done() bool {
	return p.pos >= len(p.lines)
}

func (p *parser) peek() string {
	return p.lines[p.pos]
}

func (p *parser) next() string {
	line := p.lines[p.pos]
	p.pos++
	return line
}

// block matches one block-level alternative at the current line. The order
// of attempts is fixed; the first rule that matches wins, and the empty
// line alternative accepts anything the others reject only when the line is
// blank, so a non-blank line always ends up in a list, preformat, or
// paragraph.
func (p *parser) block() *Node {
	line := p.peek()
	switch {
	case isHeader(line):
		return p.header()
	case isItemStart(line, '*'):
		return p.list(UnorderedList, BulletItem, '*')
	case isItemStart(line, '0'):
		return p.list(OrderedList, NumberedItem, '0')
	case isIndented(line):
		return p.preformat()
	case !isBlank(line):
		return p.paragraph()
	default:
		p.next()
		return &Node{Kind: EmptyLine}
	}
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isIndented(line string) bool {
	if isBlank(line) {
		return false
	}
	return line[0] == ' ' || line[0] == '\t'
}

// isHeader reports whether line is a run of '=' markers followed by at
// least one whitespace character. A bare "=word" is not a header and falls
// through to the paragraph rule.
func isHeader(line string) bool {
	i := 0
	for i < len(line) && line[i] == '=' {
		i++
	}
	if i == 0 || i >= len(line) {
		return false
	}
	return line[i] == ' ' || line[i] == '\t'
}

// isItemStart reports whether line begins a list item with the given
// marker: the marker plus whitespace, or the bare marker for an empty item.
func isItemStart(line string, marker byte) bool {
	if len(line) == 0 || line[0] != marker {
		return false
	}
	if len(line) == 1 {
		return true
	}
	return line[1] == ' ' || line[1] == '\t'
}

func (p *parser) header() *Node {
	line := p.next()
	level := 0
	for level < len(line) && line[level] == '=' {
		level++
	}
	rest := strings.TrimLeft(line[level:], " \t")
	return &Node{Kind: Header, Level: level, Nodes: parseInline(rest)}
}

// list collects one or more consecutive items. Each item owns any
// continuation lines that follow it: lines that do not start another item
// of either flavor are newline-joined onto the current item, so a list runs
// until a blank line or a new block that starts with a list marker of the
// other kind ends it. A single trailing empty line belongs to the list.
func (p *parser) list(listKind, itemKind Kind, marker byte) *Node {
	var items []*Node
	for !p.done() && isItemStart(p.peek(), marker) {
		line := p.next()
		text := ""
		if len(line) > 1 {
			text = strings.TrimLeft(line[1:], " \t")
		}

		for !p.done() && isContinuation(p.peek()) {
			text += "\n" + p.next()
		}
		items = append(items, parent(itemKind, parseInline(text)))
	}

	if !p.done() && isBlank(p.peek()) {
		p.next()
	}
	return parent(listKind, items)
}

func isContinuation(line string) bool {
	if isBlank(line) {
		return false
	}
	return !isItemStart(line, '*') && !isItemStart(line, '0')
}

// preformat collects a run of indented lines, stored verbatim with no
// inline parsing. Blank lines are allowed inside as long as another
// indented line follows; they stay part of the block. A final blank line
// terminates it.
func (p *parser) preformat() *Node {
	var lines []*Node
	for {
		for !p.done() && isIndented(p.peek()) {
			lines = append(lines, leaf(IndentedLine, p.next()))
		}

		blanks := 0
		for p.pos+blanks < len(p.lines) && isBlank(p.lines[p.pos+blanks]) {
			blanks++
		}
		if blanks == 0 || p.pos+blanks >= len(p.lines) || !isIndented(p.lines[p.pos+blanks]) {
			break
		}
		for i := 0; i < blanks; i++ {
			p.next()
			lines = append(lines, leaf(IndentedLine, ""))
		}
	}

	if !p.done() && isBlank(p.peek()) {
		p.next()
	}
	return parent(Preformat, lines)
}

// paragraph joins consecutive plain lines and inline-parses them as one
// unit, so an inline span may continue across a line break.
func (p *parser) paragraph() *Node {
	var lines []string
	for !p.done() {
		line := p.peek()
		if isBlank(line) || isHeader(line) || isItemStart(line, '*') ||
			isItemStart(line, '0') || isIndented(line) {
			break
		}
		lines = append(lines, p.next())
	}
	return parent(Paragraph, parseInline(strings.Join(lines, "\n")))
}
