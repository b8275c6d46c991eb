package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"

	"github.com/podwiki/wikidoc/filter"
	"github.com/podwiki/wikidoc/wikidoc"
)

// convertFile translates one whole wikidoc file. An empty output derives
// the destination from the input name; "-" writes to stdout.
func convertFile(cfg configuration, path, format, output string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "could not read "+path)
	}

	renderer := &wikidoc.Renderer{Keywords: cfg.Keywords}
	nodes := wikidoc.Parse(string(src))

	var out string
	var ext string
	switch format {
	case "html":
		out, ext = renderer.RenderHTML(nodes), ".html"
	default:
		out, ext = renderer.Render(nodes), ".pod"
	}

	return write(path, output, ext, []byte(out))
}

// filterFile runs the extraction pass over one host document.
func filterFile(cfg configuration, path, output string) error {
	src, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not read "+path)
	}
	defer src.Close()

	var buf bytes.Buffer
	if err := filter.New(cfg.filterOptions()).Run(src, &buf); err != nil {
		return errors.Wrap(err, path)
	}
	return write(path, output, ".pod", buf.Bytes())
}

func dumpTree(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "could not read "+path)
	}
	pp.Println(wikidoc.Parse(string(src)))
	return nil
}

func write(path, output, ext string, out []byte) error {
	if output == "-" {
		_, err := os.Stdout.Write(out)
		return errors.Wrap(err, "could not write stdout")
	}

	dst := output
	if dst == "" {
		dst = strings.TrimSuffix(path, filepath.Ext(path)) + ext
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return errors.Wrap(err, "could not write "+dst)
	}

	log.Printf("%s: wrote %s (%s)", path, dst, humanize.Bytes(uint64(len(out))))
	return nil
}
