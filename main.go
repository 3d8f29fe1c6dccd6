package main

import (
	"os"

	"github.com/thenoetrevino/manpower/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
