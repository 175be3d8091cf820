// main is the entry point for the feedlens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/feedlens/feedlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
