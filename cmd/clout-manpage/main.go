package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/clout/internal/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()

	err := doc.GenMan(rootCmd, commands.ManHeader(rootCmd.Name()), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
