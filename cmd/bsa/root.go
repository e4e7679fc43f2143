// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command bsa is the CLI/Embedder surface of spec.md §6: it exposes
// Analyze behind the asm/hex input affordances and prints the Analysis as a
// human-readable report, or as JSON with --json. Exit code 0 means an
// Analysis was produced for every input (even a statically unspendable
// one — that is a valid result); non-zero means some input failed to
// decode, or the analyzer itself could not finish (a *script.StaticError or
// *script.ResourceError), or a flag was misconfigured.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wangxinyu2018/bsa/asm"
	"github.com/wangxinyu2018/bsa/hexscript"
	"github.com/wangxinyu2018/bsa/internal/limits"
	"github.com/wangxinyu2018/bsa/script"
)

var (
	versionFlag  string
	rulesetFlag  string
	jsonOutput   bool
	parallelFlag bool
	fromSPKFlag  string

	cache = newAnalysisCache(256)

	// anyInputFailed is set whenever any single input in a batch fails to
	// decode or analyze; main() turns it into a non-zero exit after the
	// whole batch has been reported, so one bad script in a batch never
	// hides the results of the others.
	anyInputFailed bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bsa",
		Short:         "bsa statically analyzes Bitcoin Script",
		Long:          "bsa decodes a Bitcoin Script program and symbolically executes every reachable spending path, reporting the maximum witness stack depth and the DNF set of spending conditions under which the script succeeds.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&versionFlag, "version", "legacy", "script version: legacy, segwit-v0, tapscript-v1")
	root.PersistentFlags().StringVar(&rulesetFlag, "ruleset", "consensus", "ruleset: consensus, consensus+policy")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit each Analysis as JSON instead of a human-readable report")
	root.PersistentFlags().BoolVar(&parallelFlag, "parallel", false, "explore independent spending-path subtrees concurrently")
	root.PersistentFlags().StringVar(&fromSPKFlag, "from-spk", "", "infer --version from this hex scriptPubKey's witness program instead of passing --version directly")

	root.AddCommand(newHexCmd())
	root.AddCommand(newAsmCmd())
	return root
}

func newHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex <script-hex>...",
		Short: "analyze one or more hex-encoded scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd, args, hexscript.Decode)
		},
	}
}

func newAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm <script-asm>...",
		Short: "analyze one or more asm-encoded scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd, args, asm.Assemble)
		},
	}
}

// runAll decodes and analyzes every input with decodeSrc, reporting each
// result as it completes; a per-input failure is printed inline and does
// not stop the batch.
func runAll(cmd *cobra.Command, inputs []string, decodeSrc func(string) ([]byte, error)) error {
	version, err := parseVersion(versionFlag)
	if err != nil {
		return err
	}
	if fromSPKFlag != "" {
		spk, err := hexscript.Decode(fromSPKFlag)
		if err != nil {
			return fmt.Errorf("--from-spk: %w", err)
		}
		v, ok := script.ClassifyWitnessProgram(spk)
		if !ok {
			return fmt.Errorf("--from-spk: %s is not a recognized witness program", fromSPKFlag)
		}
		version = v
	}
	ruleset, err := parseRuleset(rulesetFlag)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	ctx := cmd.Context()

	for _, src := range inputs {
		raw, err := decodeSrc(src)
		if err != nil {
			reportFailure(w, src, err)
			continue
		}

		analysis, err := cache.analyze(ctx, raw, version, ruleset, parallelFlag)
		if err != nil {
			reportFailure(w, src, err)
			continue
		}

		if jsonOutput {
			if err := printJSON(w, analysis); err != nil {
				reportFailure(w, src, err)
			}
			continue
		}
		printReport(w, src, analysis)
	}
	return nil
}

func reportFailure(w io.Writer, src string, err error) {
	anyInputFailed = true
	fmt.Fprintf(w, "script: %s\n  error: %v\n", src, err)
}

func parseVersion(s string) (limits.ScriptVersion, error) {
	switch s {
	case "legacy":
		return limits.Legacy, nil
	case "segwit-v0", "segwitv0":
		return limits.SegWitV0, nil
	case "tapscript-v1", "tapscriptv1":
		return limits.TapscriptV1, nil
	default:
		return 0, fmt.Errorf("unknown --version %q (want legacy, segwit-v0, or tapscript-v1)", s)
	}
}

func parseRuleset(s string) (limits.RuleSet, error) {
	switch s {
	case "consensus":
		return limits.ConsensusOnly, nil
	case "consensus+policy", "policy":
		return limits.ConsensusAndPolicy, nil
	default:
		return 0, fmt.Errorf("unknown --ruleset %q (want consensus or consensus+policy)", s)
	}
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if anyInputFailed {
		os.Exit(1)
	}
}
