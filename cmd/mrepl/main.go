package main

import (
	"os"

	"github.com/msto63/mrepl/cmd/mrepl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
