// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/wangxinyu2018/bsa/internal/limits"
	"github.com/wangxinyu2018/bsa/script"
)

// analysisCacheKey identifies one memoized Analyze call: the exact script
// bytes plus every input that affects its result.
type analysisCacheKey struct {
	script   string
	version  limits.ScriptVersion
	ruleset  limits.RuleSet
	parallel bool
}

type analysisResult struct {
	analysis script.Analysis
	err      error
}

// analysisCache memoizes Analyze by (script bytes, version, ruleset), the
// way a long-running embedder (the browser UI shell of spec.md §1
// Out-of-scope) avoids re-walking a script byte string it has already
// analyzed — e.g. re-rendering the same scriptPubKey across several blocks.
// groupcache/lru.Cache is not safe for concurrent use on its own, so every
// access here is serialized by mu.
type analysisCache struct {
	mu  sync.Mutex
	lru *lru.Cache
}

func newAnalysisCache(maxEntries int) *analysisCache {
	return &analysisCache{lru: lru.New(maxEntries)}
}

func (c *analysisCache) analyze(ctx context.Context, raw []byte, version limits.ScriptVersion, ruleset limits.RuleSet, parallel bool) (script.Analysis, error) {
	key := analysisCacheKey{script: string(raw), version: version, ruleset: ruleset, parallel: parallel}

	c.mu.Lock()
	if v, ok := c.lru.Get(key); ok {
		c.mu.Unlock()
		r := v.(analysisResult)
		return r.analysis, r.err
	}
	c.mu.Unlock()

	analysis, err := script.AnalyzeContext(ctx, raw, version, ruleset, script.Options{Parallel: parallel})

	c.mu.Lock()
	c.lru.Add(key, analysisResult{analysis: analysis, err: err})
	c.mu.Unlock()

	return analysis, err
}
