package main

import (
	"os"

	"github.com/arthur-debert/clout/internal/commands"
)

func main() {
	app := commands.New(commands.Options{})
	os.Exit(app.Run(os.Args[1:]))
}
