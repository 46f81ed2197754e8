// Command okgraph draws the improvement distribution of an A/B test,
// read from a YAML file, as a PNG, PDF or SVG image.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
