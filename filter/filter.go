// Package filter implements the line-oriented extraction pass: it scans a
// host document for embedded wikidoc regions and splices the rendered Pod
// back in their place, passing every other line through untouched.
//
// Three region styles are recognized:
//
//	=begin wikidoc ... =end wikidoc   delimited block
//	=for wikidoc ...                  one paragraph, ended by a blank line
//	### ...                           runs of marked comment lines
//
// Comment regions are off by default and the marker length is
// configurable.
package filter

import (
	"fmt"
	"io"
	"strings"

	"github.com/podwiki/wikidoc/wikidoc"
)

const (
	beginMarker = "=begin wikidoc"
	endMarker   = "=end wikidoc"
	forMarker   = "=for wikidoc"
)

type Options struct {
	// CommentBlocks enables extraction from marked comment lines.
	CommentBlocks bool

	// CommentPrefixLength is the number of '#' characters that mark a
	// wikidoc comment line. Zero means the default of 3.
	CommentPrefixLength int

	// Keywords supplies substitutions for %%name%% spans.
	Keywords map[string]string
}

type Filter struct {
	opts     Options
	prefix   string
	renderer *wikidoc.Renderer
}

func New(opts Options) *Filter {
	length := opts.CommentPrefixLength
	if length <= 0 {
		length = 3
	}
	return &Filter{
		opts:     opts,
		prefix:   strings.Repeat("#", length),
		renderer: &wikidoc.Renderer{Keywords: opts.Keywords},
	}
}

// Run copies r to w, translating embedded wikidoc regions as it goes. The
// only failures are I/O failures; the translation itself is total. An
// unterminated =begin block degrades to translating the rest of the input
// rather than erroring out.
func (f *Filter) Run(r io.Reader, w io.Writer) error {
	lines, trailingNL, err := readLines(r)
	if err != nil {
		return err
	}

	for i := 0; i < len(lines); {
		line := lines[i]
		switch {
		case strings.TrimRight(line, " \t") == beginMarker:
			i++
			start := i
			for i < len(lines) && strings.TrimRight(lines[i], " \t") != endMarker {
				i++
			}
			region := lines[start:i]
			if i < len(lines) {
				i++
			}
			if err := f.translate(w, region); err != nil {
				return err
			}

		case isFor(line):
			var region []string
			rest := strings.TrimPrefix(line[len(forMarker):], ":")
			if rest = strings.TrimLeft(rest, " \t"); rest != "" {
				region = append(region, rest)
			}
			i++
			for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
				region = append(region, lines[i])
				i++
			}
			if err := f.translate(w, region); err != nil {
				return err
			}

		case f.isComment(line):
			var region []string
			for i < len(lines) && f.isComment(lines[i]) {
				region = append(region, f.stripComment(lines[i]))
				i++
			}
			if err := f.translate(w, region); err != nil {
				return err
			}

		default:
			// Pass-through lines stay byte-identical: the final line
			// only gets a newline back if the input had one.
			out := line
			if i < len(lines)-1 || trailingNL {
				out += "\n"
			}
			if _, err := io.WriteString(w, out); err != nil {
				return fmt.Errorf("filter: write output: %w", err)
			}
			i++
		}
	}
	return nil
}

func readLines(r io.Reader) ([]string, bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("filter: read input: %w", err)
	}
	if len(data) == 0 {
		return nil, true, nil
	}

	s := string(data)
	trailingNL := strings.HasSuffix(s, "\n")
	if trailingNL {
		s = s[:len(s)-1]
	}
	return strings.Split(s, "\n"), trailingNL, nil
}

func (f *Filter) translate(w io.Writer, region []string) error {
	pod := f.renderer.Render(wikidoc.Parse(strings.Join(region, "\n") + "\n"))
	if _, err := io.WriteString(w, pod); err != nil {
		return fmt.Errorf("filter: write output: %w", err)
	}
	return nil
}

// isFor matches "=for wikidoc" and the "=for wikidoc:" spelling, but not
// other =for targets.
func isFor(line string) bool {
	if !strings.HasPrefix(line, forMarker) {
		return false
	}
	rest := line[len(forMarker):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == ':'
}

// isComment matches the marker run only when it ends there: a longer run
// such as "####" against a "###" marker is an ordinary host comment.
func (f *Filter) isComment(line string) bool {
	if !f.opts.CommentBlocks || !strings.HasPrefix(line, f.prefix) {
		return false
	}
	rest := line[len(f.prefix):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// stripComment removes the marker and a single following space; further
// indentation is preformat text and stays.
func (f *Filter) stripComment(line string) string {
	rest := line[len(f.prefix):]
	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
	}
	return rest
}
