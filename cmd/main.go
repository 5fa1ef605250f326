// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package main is the entry point for the rpt2rdf CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kevdc82/RPT-to-RDF-sub000/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
