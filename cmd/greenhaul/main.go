package main

import (
	"os"

	"github.com/greenhaul/emissions/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
