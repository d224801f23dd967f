package engine

import (
	"sort"
	"sync"
)

// Transcript store: a process-lifetime map of video ID → TranscriptInfo.
// Entries are overwritten on re-fetch and never evicted; nothing survives
// a restart.

var store = struct {
	mu sync.RWMutex
	m  map[string]TranscriptInfo
}{m: make(map[string]TranscriptInfo)}

// StoreGet returns the stored transcript for videoID, if any.
func StoreGet(videoID string) (TranscriptInfo, bool) {
	store.mu.RLock()
	info, ok := store.m[videoID]
	store.mu.RUnlock()
	if ok {
		storeHits.Add(1)
	} else {
		storeMisses.Add(1)
	}
	return info, ok
}

// StorePut stores a transcript, replacing any previous entry for the same ID.
func StorePut(info TranscriptInfo) {
	store.mu.Lock()
	store.m[info.VideoID] = info
	store.mu.Unlock()
}

// StoreList returns all stored transcripts, most recently fetched first.
// Ties are broken by video ID so the order is deterministic.
func StoreList() []TranscriptInfo {
	store.mu.RLock()
	out := make([]TranscriptInfo, 0, len(store.m))
	for _, info := range store.m {
		out = append(out, info)
	}
	store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].FetchedAt.Equal(out[j].FetchedAt) {
			return out[i].FetchedAt.After(out[j].FetchedAt)
		}
		return out[i].VideoID < out[j].VideoID
	})
	return out
}

// StoreLen returns the number of stored transcripts.
func StoreLen() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.m)
}

// storeReset clears the store. Test helper.
func storeReset() {
	store.mu.Lock()
	store.m = make(map[string]TranscriptInfo)
	store.mu.Unlock()
}
