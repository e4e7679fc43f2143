// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wangxinyu2018/bsa/script"
)

// printReport writes analysis for src in the human-readable report format
// spec.md §6 asks the CLI/Embedder surface to produce.
func printReport(w io.Writer, src string, analysis script.Analysis) {
	fmt.Fprintf(w, "script: %s\n", src)
	fmt.Fprintf(w, "  max witness stack depth: %d\n", analysis.MaxWitnessStackDepth)
	if len(analysis.SpendingPaths) == 0 {
		fmt.Fprintln(w, "  unspendable: no satisfying spending path exists")
		return
	}
	fmt.Fprintf(w, "  spending paths (%d):\n", len(analysis.SpendingPaths))
	for i, p := range analysis.SpendingPaths {
		fmt.Fprintf(w, "    %d. %s\n", i+1, script.FormatPath(p))
	}
}

// printJSON writes analysis as indented JSON, used when --json is set.
func printJSON(w io.Writer, analysis script.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reportDoc{
		MaxWitnessStackDepth: analysis.MaxWitnessStackDepth,
		SpendingPaths:        analysis.SpendingPaths,
	})
}

// reportDoc mirrors script.Analysis field-for-field; kept distinct so the
// JSON shape is pinned independently of Analysis's internal layout.
type reportDoc struct {
	MaxWitnessStackDepth int                  `json:"max_witness_stack_depth"`
	SpendingPaths        []script.SpendingPath `json:"spending_paths"`
}
