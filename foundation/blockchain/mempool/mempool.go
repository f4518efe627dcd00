// Package mempool maintains the queue of transfers waiting to be mined.
package mempool

import (
	"sync"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
)

// Mempool represents an ordered cache of transfers. The order transfers are
// added is the order they will be mined in.
type Mempool struct {
	pool []database.Transfer
	mu   sync.RWMutex
}

// New constructs a new empty mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transfers in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transfer to the end of the pool and returns the new count.
func (mp *Mempool) Add(tx database.Transfer) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)

	return len(mp.pool)
}

// Copy returns a copy of the transfers in the pool.
func (mp *Mempool) Copy() []database.Transfer {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	cpy := make([]database.Transfer, len(mp.pool))
	copy(cpy, mp.pool)

	return cpy
}

// Take removes every transfer from the pool and hands them to the caller.
// Transfers added after this call start a fresh pool.
func (mp *Mempool) Take() []database.Transfer {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	trans := mp.pool
	mp.pool = nil

	return trans
}

// Restore places the specified transfers in front of whatever is currently
// in the pool, keeping their order.
func (mp *Mempool) Restore(trans []database.Transfer) {
	if len(trans) == 0 {
		return
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	pool := make([]database.Transfer, 0, len(trans)+len(mp.pool))
	pool = append(pool, trans...)
	pool = append(pool, mp.pool...)

	mp.pool = pool
}
