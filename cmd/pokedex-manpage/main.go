package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pokedex/cmd/pokedex"
	"github.com/arthur-debert/pokedex/internal/version"
)

func main() {
	rootCmd := pokedex.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "POKEDEX",
		Section: "1",
		Source:  "pokedex " + version.Version,
		Manual:  "pokedex manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
