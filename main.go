package main

import (
	"log"

	"github.com/alecthomas/kong"
)

var cli struct {
	Config string `short:"c" help:"Configuration file path" default:"config.json"`

	Convert struct {
		Format string   `short:"f" help:"Output markup" enum:"pod,html" default:"pod"`
		Output string   `short:"o" help:"Output file; '-' for stdout"`
		Watch  bool     `short:"w" help:"Keep running and re-translate inputs when they change"`
		Paths  []string `arg:"" type:"existingfile" help:"Wikidoc source files"`
	} `cmd:"" help:"Translate whole wikidoc files to Pod or HTML"`

	Filter struct {
		Output string   `short:"o" help:"Output file; '-' for stdout"`
		Watch  bool     `short:"w" help:"Keep running and re-translate inputs when they change"`
		Paths  []string `arg:"" type:"existingfile" help:"Host documents with embedded wikidoc regions"`
	} `cmd:"" help:"Extract embedded wikidoc regions and splice in the rendered Pod"`

	Tree struct {
		Path string `arg:"" type:"existingfile" help:"Wikidoc source file"`
	} `cmd:"" help:"Parse a wikidoc file and dump its node tree"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("wikidoc"),
		kong.Description("Translate wikidoc markup to Pod."),
	)

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		log.Fatalln(err)
	}

	switch ctx.Command() {
	case "convert <paths>":
		run(cli.Convert.Paths, cli.Convert.Watch, func(path string) error {
			return convertFile(cfg, path, cli.Convert.Format, outPath(cli.Convert.Output, len(cli.Convert.Paths)))
		})

	case "filter <paths>":
		run(cli.Filter.Paths, cli.Filter.Watch, func(path string) error {
			return filterFile(cfg, path, outPath(cli.Filter.Output, len(cli.Filter.Paths)))
		})

	case "tree <path>":
		if err := dumpTree(cli.Tree.Path); err != nil {
			log.Fatalln(err)
		}

	case "version":
		printVersion()
	}
}

// outPath resolves the -o flag: an explicit destination only makes sense
// for a single input, so multi-input runs always derive per-file names.
func outPath(flag string, inputs int) string {
	if inputs > 1 && flag != "-" {
		return ""
	}
	return flag
}

func run(paths []string, watch bool, fn func(string) error) {
	for _, path := range paths {
		if err := fn(path); err != nil {
			log.Fatalln(err)
		}
	}
	if !watch {
		return
	}
	if err := watchAndRun(paths, fn); err != nil {
		log.Fatalln(err)
	}
}
