// Package main provides the lineage CLI: inspection, construction, and
// catalog snapshots for the process-wide class registry.
// See docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"
	"os"

	// Shipped classes; declaring them is the import's only purpose.
	_ "github.com/mesh-intelligence/lineage/pkg/shapes"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
