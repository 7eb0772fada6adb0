package main

import (
	"os"

	"github.com/convertlength/convertlength/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
