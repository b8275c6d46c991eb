package wikidoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	nodes := Parse("= Title\n")
	require.Len(t, nodes, 1)
	assert.Equal(t, Header, nodes[0].Kind)
	assert.Equal(t, 1, nodes[0].Level)
	require.Len(t, nodes[0].Nodes, 1)
	assert.Equal(t, RegularText, nodes[0].Nodes[0].Kind)
	assert.Equal(t, "Title", nodes[0].Nodes[0].Text)
}

func TestParseHeaderLevelNotClamped(t *testing.T) {
	nodes := Parse("===== deep\n")
	require.Len(t, nodes, 1)
	assert.Equal(t, 5, nodes[0].Level)
}

func TestParseHeaderNeedsWhitespace(t *testing.T) {
	nodes := Parse("=word\n")
	require.Len(t, nodes, 1)
	assert.Equal(t, Paragraph, nodes[0].Kind)
}

func TestParseBulletContinuation(t *testing.T) {
	nodes := Parse("* one\ntwo\n* three\n")
	require.Len(t, nodes, 1)
	require.Equal(t, UnorderedList, nodes[0].Kind)

	items := nodes[0].Nodes
	require.Len(t, items, 2)
	assert.Equal(t, BulletItem, items[0].Kind)

	first := items[0].Nodes
	require.Len(t, first, 3)
	assert.Equal(t, "one", first[0].Text)
	assert.Equal(t, WhiteSpace, first[1].Kind)
	assert.Equal(t, "\n", first[1].Text)
	assert.Equal(t, "two", first[2].Text)

	require.Len(t, items[1].Nodes, 1)
	assert.Equal(t, "three", items[1].Nodes[0].Text)
}

func TestParseEmptyBulletItem(t *testing.T) {
	nodes := Parse("*\n* x\n")
	require.Len(t, nodes, 1)
	items := nodes[0].Nodes
	require.Len(t, items, 2)
	assert.Empty(t, items[0].Nodes)
}

func TestParseOrderedMarkerIsLiteralZero(t *testing.T) {
	nodes := Parse("0 a\n")
	require.Len(t, nodes, 1)
	assert.Equal(t, OrderedList, nodes[0].Kind)

	// Any other digit is plain paragraph text.
	nodes = Parse("1 a\n")
	require.Len(t, nodes, 1)
	assert.Equal(t, Paragraph, nodes[0].Kind)
}

func TestParsePreformatGroups(t *testing.T) {
	nodes := Parse("  a\n\n  b\n")
	require.Len(t, nodes, 1)
	require.Equal(t, Preformat, nodes[0].Kind)

	lines := nodes[0].Nodes
	require.Len(t, lines, 3)
	assert.Equal(t, "  a", lines[0].Text)
	assert.Equal(t, "", lines[1].Text)
	assert.Equal(t, "  b", lines[2].Text)
	for _, l := range lines {
		assert.Equal(t, IndentedLine, l.Kind)
	}
}

func TestParseParagraphsSplitOnBlank(t *testing.T) {
	nodes := Parse("a\n\nb\n")
	require.Len(t, nodes, 2)
	assert.Equal(t, Paragraph, nodes[0].Kind)
	assert.Equal(t, Paragraph, nodes[1].Kind)
}

func TestParseTopLevelEmptyLinesDiscarded(t *testing.T) {
	nodes := Parse("\n\na\n\n\n")
	require.Len(t, nodes, 1)
	assert.Equal(t, Paragraph, nodes[0].Kind)
}

func TestParseLinkArities(t *testing.T) {
	nodes := Parse("[Target]\n")
	link := nodes[0].Nodes[0]
	require.Equal(t, LinkContent, link.Kind)
	require.Len(t, link.Nodes, 1)
	assert.Equal(t, LinkTarget, link.Nodes[0].Kind)
	assert.Equal(t, "Target", link.Nodes[0].Text)

	nodes = Parse("[see|Target]\n")
	link = nodes[0].Nodes[0]
	require.Len(t, link.Nodes, 2)
	assert.Equal(t, LinkLabel, link.Nodes[0].Kind)
	assert.Equal(t, LinkTarget, link.Nodes[1].Kind)
	assert.Equal(t, "Target", link.Nodes[1].Text)
}

func TestParseEscapedPipeDoesNotSplitLink(t *testing.T) {
	nodes := Parse("[a\\|b]\n")
	link := nodes[0].Nodes[0]
	require.Len(t, link.Nodes, 1)
	assert.Equal(t, `a\|b`, link.Nodes[0].Text)
}

func TestParseUnterminatedDelimiter(t *testing.T) {
	nodes := Parse("{oops\n")
	require.Len(t, nodes, 1)
	parts := nodes[0].Nodes
	require.Len(t, parts, 2)
	assert.Equal(t, RegularText, parts[0].Kind)
	assert.Equal(t, "{", parts[0].Text)
	assert.Equal(t, "oops", parts[1].Text)
}

func TestParseInlineKinds(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"{code}", InlineCode},
		{"*bold*", BoldText},
		{"~em~", ItalicText},
		{"%%KEY%%", KeyWord},
		{"[x]", LinkContent},
		{"E<gt>", EscapedChar},
		{"(x)", Parens},
		{"word", RegularText},
	}

	for _, tt := range tests {
		nodes := Parse(tt.in + "\n")
		require.Len(t, nodes, 1, tt.in)
		require.NotEmpty(t, nodes[0].Nodes, tt.in)
		assert.Equal(t, tt.kind, nodes[0].Nodes[0].Kind, tt.in)
	}
}

func TestParseTotality(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"*",
		"~",
		"{",
		"(((",
		"%%",
		"E<",
		"[[[",
		"= ",
		"0",
		"\t\n \n",
		"*a\n0 b\n= c\n  d\n",
		strings.Repeat("{", 1000),
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			Render(Parse(in))
		}, "%q", in)
	}
}
