package main

import (
	"os"

	"github.com/abhisek/batball/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
