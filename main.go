package main

import (
	"os"

	"github.com/fieldplan/tourplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
