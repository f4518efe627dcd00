package ledger

import (
	"fmt"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
)

// Height returns the number of blocks in the chain, genesis included.
func (l *Ledger) Height() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.chain)
}

// Blocks returns a copy of every block in the chain.
func (l *Ledger) Blocks() []database.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	blocks := make([]database.Block, len(l.chain))
	for i, blk := range l.chain {
		blocks[i] = blk.Clone()
	}

	return blocks
}

// Block returns the live block stored at the specified position in the
// chain. Changes made through the returned pointer are not re-mined and will
// be caught by VerifyIntegrity.
func (l *Ledger) Block(number int) (*database.Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if number < 0 || number >= len(l.chain) {
		return nil, fmt.Errorf("block %d does not exist, height %d", number, len(l.chain))
	}

	return l.chain[number], nil
}

// Pending returns a copy of the transfers waiting to be mined.
func (l *Ledger) Pending() []database.Transfer {
	return l.mempool.Copy()
}

// PendingCount returns the number of transfers waiting to be mined.
func (l *Ledger) PendingCount() int {
	return l.mempool.Count()
}

// Balance folds over every transfer in the chain to calculate the net
// amount held by the account. Pending transfers are not included.
func (l *Ledger) Balance(account database.AccountID) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var balance int64
	for _, blk := range l.chain {
		for _, tx := range blk.Transfers {
			if !tx.IsReward() && tx.From == account {
				balance -= int64(tx.Amount)
			}
			if tx.To == account {
				balance += int64(tx.Amount)
			}
		}
	}

	return balance
}

// Balances calculates the balance for every account found in the chain.
func (l *Ledger) Balances() map[database.AccountID]int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balances := make(map[database.AccountID]int64)
	for _, blk := range l.chain {
		for _, tx := range blk.Transfers {
			if !tx.IsReward() {
				balances[tx.From] -= int64(tx.Amount)
			}
			balances[tx.To] += int64(tx.Amount)
		}
	}

	return balances
}
