package main

import (
	"os"

	"github.com/rmendes/imobi/cmd/imobi/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintErr("Error: %v", err)
		os.Exit(1)
	}
}
