// Package wikidoc parses the wikidoc markup dialect into a tree of typed
// nodes and renders that tree as Pod. Parsing and rendering are both total:
// any input yields a tree, and any tree yields output, with unrecognized
// constructs degrading to plain text instead of failing.
package wikidoc

// Kind identifies the grammar production a Node came from.
type Kind uint8

const (
	Header Kind = iota
	UnorderedList
	BulletItem
	OrderedList
	NumberedItem
	Preformat
	IndentedLine
	Paragraph
	PlainLine
	EmptyLine
	RegularText
	WhiteSpace
	EscapedChar
	InlineCode
	BoldText
	ItalicText
	Parens
	KeyWord
	LinkContent
	LinkLabel
	LinkTarget

	kindCount = int(LinkTarget) + 1
)

var kindNames = [kindCount]string{
	Header:        "Header",
	UnorderedList: "UnorderedList",
	BulletItem:    "BulletItem",
	OrderedList:   "OrderedList",
	NumberedItem:  "NumberedItem",
	Preformat:     "Preformat",
	IndentedLine:  "IndentedLine",
	Paragraph:     "Paragraph",
	PlainLine:     "PlainLine",
	EmptyLine:     "EmptyLine",
	RegularText:   "RegularText",
	WhiteSpace:    "WhiteSpace",
	EscapedChar:   "EscapedChar",
	InlineCode:    "InlineCode",
	BoldText:      "BoldText",
	ItalicText:    "ItalicText",
	Parens:        "Parens",
	KeyWord:       "KeyWord",
	LinkContent:   "LinkContent",
	LinkLabel:     "LinkLabel",
	LinkTarget:    "LinkTarget",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// container reports which kinds hold child nodes. Every other kind is a
// leaf carrying literal text; a node is never both.
var container = [kindCount]bool{
	Header:        true,
	UnorderedList: true,
	BulletItem:    true,
	OrderedList:   true,
	NumberedItem:  true,
	Preformat:     true,
	Paragraph:     true,
	PlainLine:     true,
	BoldText:      true,
	ItalicText:    true,
	Parens:        true,
	LinkContent:   true,
	LinkLabel:     true,
}

// Node is one element of a wikidoc parse tree. Leaf kinds use Text,
// container kinds use Nodes. Level is set on Header nodes only and holds
// the raw count of '=' markers; it is clamped at render time, not here.
type Node struct {
	Kind  Kind
	Text  string
	Nodes []*Node
	Level int
}

func leaf(k Kind, text string) *Node {
	return &Node{Kind: k, Text: text}
}

func parent(k Kind, nodes []*Node) *Node {
	return &Node{Kind: k, Nodes: nodes}
}
