// Package main provides the kclient CLI, a small kubectl-style front end
// for getting, listing and watching resources through the typed client.
package main

import (
	"fmt"
	"os"

	"github.com/dtomasi/kclient/cmd/kclient/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
