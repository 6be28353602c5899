package main

import (
	"os"

	"github.com/msto63/exline/cmd/exline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
