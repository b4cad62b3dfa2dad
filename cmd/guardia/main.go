// Package main provides the guardia binary: the terminal client used by the
// Patrulha Maria da Penha to register victim and aggressor questionnaires,
// manage operator accounts and print case documents.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
