// SPDX-License-Identifier: MIT

// Command 1h-testing compiles Kirby diagrams into triangulations and prints
// their isomorphism signatures.
//
//	1h-testing --pd "(4 1 3 2) (2 3 1 4)" --annotations "0 0"
//	1h-testing --file diagrams/hopf.yaml --fingerprint
//	1h-testing batch 'diagrams/**/*.yaml'
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
