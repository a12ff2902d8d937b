// clout-completions writes a shell completion script to stdout, for
// packaging.
package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/clout/internal/commands"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(1)
	}

	app := commands.New(commands.Options{})
	os.Exit(app.Run([]string{"completion", os.Args[1]}))
}
