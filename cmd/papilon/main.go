package main

import (
	"os"

	"github.com/papilon-app/papilon-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
