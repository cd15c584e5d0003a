package main

import (
	"os"

	"github.com/ezhil-ai/ezhil/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
