package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptFetches atomic.Int64
	FetchErrors       atomic.Int64
	OEmbedRequests    atomic.Int64
	ResourceReads     atomic.Int64
	PromptRequests    atomic.Int64
}

// Store counters live here so store.go stays data-structure only.
var (
	storeHits   atomic.Int64
	storeMisses atomic.Int64
)

// StoreStats returns current store hit/miss counters.
func StoreStats() (hits, misses int64) {
	return storeHits.Load(), storeMisses.Load()
}

// GetMetrics returns a snapshot of all metrics including store stats.
func GetMetrics() map[string]int64 {
	hits, misses := StoreStats()
	return map[string]int64{
		"transcript_fetches": metrics.TranscriptFetches.Load(),
		"fetch_errors":       metrics.FetchErrors.Load(),
		"oembed_requests":    metrics.OEmbedRequests.Load(),
		"resource_reads":     metrics.ResourceReads.Load(),
		"prompt_requests":    metrics.PromptRequests.Load(),
		"store_hits":         hits,
		"store_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"transcript_fetches", "fetch_errors",
		"oembed_requests",
		"resource_reads", "prompt_requests",
		"store_hits", "store_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the sources/ sub-package.
func IncrTranscriptFetch() { metrics.TranscriptFetches.Add(1) }
func IncrFetchError()      { metrics.FetchErrors.Add(1) }
func IncrOEmbedRequest()   { metrics.OEmbedRequests.Add(1) }

// Incrementors for the tubeserver package.
func IncrResourceRead()  { metrics.ResourceReads.Add(1) }
func IncrPromptRequest() { metrics.PromptRequests.Add(1) }
