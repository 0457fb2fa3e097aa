package search

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a keystroke-triggered search runs.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer hands out tokens; only the most recent token is live.
// A keystroke takes a token and checks it after the interval. A submit
// takes a token too, which cancels any pending keystroke search.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	token uint64
}

// NewDebouncer returns a debouncer with the given interval, or DefaultDebounce if it is not positive.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{interval: interval}
}

// Interval returns the quiet period.
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}

// Touch invalidates every earlier token and returns a new one.
func (d *Debouncer) Touch() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.token++
	return d.token
}

// Live reports whether token is still the latest.
func (d *Debouncer) Live(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return token == d.token
}
