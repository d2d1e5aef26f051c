// Package keylock serializes work on the same key within one process.
package keylock

import (
	"hash/fnv"
	"sync"
)

// Stripes is the number of mutexes keys are spread over.
const Stripes = 64

// Locks is a fixed set of striped mutexes. Distinct keys may share a stripe,
// so callers must not block on anything slow while holding one. The zero value is ready to use.
type Locks struct {
	stripes [Stripes]sync.Mutex
}

// Lock acquires the stripe for key and returns its unlock func.
func (l *Locks) Lock(key string) func() {
	m := &l.stripes[Stripe(key)]
	m.Lock()
	return m.Unlock
}

// Stripe returns the stripe index of key.
func Stripe(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % Stripes
}
