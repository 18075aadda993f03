package utils

import "sync"

// KeyedMutex serializes work per key. The aggregator locks on
// "(user, instrument)" so two concurrent batches for the same player cannot
// interleave their read-then-write and drop a snapshot.
//
// Entries are never evicted; the key space is bounded by active users times
// the four instrument categories.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for key and returns the matching unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
