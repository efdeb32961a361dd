// Package syncutils holds the lock types used by in-memory aggregates.
//
// Default builds use the standard library. Building with the deadlock tag
// (go test -tags deadlock ./...) replaces them with sasha-s/go-deadlock so
// concurrency tests also detect lock-order inversions.
package syncutils
