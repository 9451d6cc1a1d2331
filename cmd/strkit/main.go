package main

import (
	"os"

	"github.com/msto63/strkit/cmd/strkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
