// Package main is the entry point for the jamobs CLI.
package main

import (
	"os"

	"github.com/f3rmion/jamobs/cmd/jamobs/cmd"
)

func main() {
	code := 0
	runOnMainThread(func() {
		if err := cmd.Execute(); err != nil {
			code = 1
		}
	})
	os.Exit(code)
}
