package main

import (
	"os"

	"usermap/cmd/usermap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
