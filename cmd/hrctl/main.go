// Package main is the entry point for the hrctl console.
package main

import (
	"os"

	"hr-directory/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
