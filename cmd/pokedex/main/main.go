package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pokedex/cmd/pokedex"
	"github.com/arthur-debert/pokedex/pkg/output/styles"
)

func main() {
	rootCmd := pokedex.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Usage mistakes also get the usage
		if pokedex.IsUsageError(err) {
			fmt.Fprintln(os.Stderr)
			rootCmd.SetOut(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(1)
	}
}
