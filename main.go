package main

import (
	"os"

	"github.com/1adybug/sort-imports/pkg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
