package main

import (
	"os"

	"medtour/cmd/medtourctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
