package main

import (
	"os"

	"github.com/penwyp/go-timeline-core/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
