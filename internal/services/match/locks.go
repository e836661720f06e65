package match

import (
	"sync"

	"github.com/mcoot/battleship-go2/internal/model"
)

// keyedMutex hands out one mutex per match ID, dropping entries nobody holds
type keyedMutex struct {
	mu    sync.Mutex
	locks map[model.MatchID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[model.MatchID]*lockEntry)}
}

// Lock blocks until the match's mutex is held and returns its release func
func (k *keyedMutex) Lock(id model.MatchID) func() {
	k.mu.Lock()
	entry, ok := k.locks[id]
	if !ok {
		entry = &lockEntry{}
		k.locks[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
