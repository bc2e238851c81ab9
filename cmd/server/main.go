// Package main implements the taskbook command: the HTTP API server plus
// database migration and user administration subcommands.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
