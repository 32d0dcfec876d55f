package main

import (
	"os"

	"github.com/crossfill/xwords/cmd/xwords/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
