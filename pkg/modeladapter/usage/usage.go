// Package usage records token consumption of chat-completion round trips.
package usage

import "sync"

// TokenCount holds the token counts reported for one round trip.
type TokenCount struct {
	PromptTokens     int
	CompletionTokens int
	Continuation     bool // True when the round trip continued a truncated answer.
}

// Total returns the sum of prompt and completion tokens.
func (tc TokenCount) Total() int {
	return tc.PromptTokens + tc.CompletionTokens
}

// Tracker accumulates usage across round trips.
// It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	entries []TokenCount
}

// Add records a round trip.
func (t *Tracker) Add(tc TokenCount) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, tc)
}

// Total returns the aggregate token counts across all entries.
func (t *Tracker) Total() TokenCount {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total TokenCount
	for _, e := range t.entries {
		total.PromptTokens += e.PromptTokens
		total.CompletionTokens += e.CompletionTokens
	}

	return total
}

// Count returns the number of recorded round trips.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

// Since returns the aggregate of the entries recorded after the first n.
// Continuation is set when any of them continued a truncated answer. Pair it
// with Count taken before the round trips of interest.
func (t *Tracker) Since(n int) TokenCount {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total TokenCount
	for _, e := range t.entries[min(max(n, 0), len(t.entries)):] {
		total.PromptTokens += e.PromptTokens
		total.CompletionTokens += e.CompletionTokens
		total.Continuation = total.Continuation || e.Continuation
	}

	return total
}
