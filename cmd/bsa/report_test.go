package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangxinyu2018/bsa/script"
)

func TestPrintReportUnspendableScript(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, "6a", script.Analysis{})

	out := buf.String()
	assert.Contains(t, out, "script: 6a")
	assert.Contains(t, out, "max witness stack depth: 0")
	assert.Contains(t, out, "unspendable: no satisfying spending path exists")
}

func TestPrintReportListsEachSpendingPath(t *testing.T) {
	pub := script.NewWitnessRef(0, "pubkey")
	a := script.Analysis{
		MaxWitnessStackDepth: 1,
		SpendingPaths: []script.SpendingPath{
			{MinWitnessDepth: 1, Conditions: []script.Predicate{
				{Kind: script.PredSignatureValid, PubKey: pub},
			}},
		},
	}

	var buf bytes.Buffer
	printReport(&buf, "51ac", a)

	out := buf.String()
	assert.Contains(t, out, "spending paths (1):")
	assert.Contains(t, out, "1. witness depth=1:")
}

func TestPrintJSONRoundTrips(t *testing.T) {
	a := script.Analysis{
		MaxWitnessStackDepth: 2,
		SpendingPaths:        []script.SpendingPath{{MinWitnessDepth: 2}},
	}

	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, a))

	var doc reportDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.MaxWitnessStackDepth)
	require.Len(t, doc.SpendingPaths, 1)
	assert.Equal(t, 2, doc.SpendingPaths[0].MinWitnessDepth)
}

func TestPrintJSONUsesSnakeCaseFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, script.Analysis{}))
	assert.Contains(t, buf.String(), `"max_witness_stack_depth"`)
	assert.Contains(t, buf.String(), `"spending_paths"`)
}

func TestPrintJSONIsIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, script.Analysis{}))
	assert.Contains(t, buf.String(), "\n  ")
}
