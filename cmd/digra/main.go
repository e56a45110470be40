package main

import (
	"os"

	"github.com/mzeevi/digra/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
