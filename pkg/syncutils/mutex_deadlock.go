//go:build deadlock

package syncutils

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

func init() {
	// Bid critical sections are in-memory only; anything held this long is stuck.
	deadlock.Opts.DeadlockTimeout = 5 * time.Second
}

// RWMutex reports lock-order inversions and stuck holders at runtime.
type RWMutex struct {
	deadlock.RWMutex
}
