//go:build !deadlock

package syncutils

import "sync"

// RWMutex is a plain sync.RWMutex. Build with -tags deadlock to swap in the
// go-deadlock detector without touching call sites.
type RWMutex struct {
	sync.RWMutex
}
