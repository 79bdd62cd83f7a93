package main

import (
	"os"

	"github.com/psantana5/streamclock/cmd/streamclock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
