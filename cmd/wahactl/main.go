package main

import (
	"os"

	"wahactl/cmd/wahactl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
