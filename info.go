package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const version = "1.1.0"

func printVersion() {
	fmt.Printf("wikidoc %s\n", version)
	fmt.Printf("Go: %s\n", runtime.Version())

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			fmt.Printf("Commit: %s\n", s.Value)
		}
	}
}
