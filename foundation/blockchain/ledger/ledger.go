// Package ledger is the core API for the blockchain and implements all the
// business rules for mining, accounting and integrity checks.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
	"github.com/barrycoin/barrycoin/foundation/blockchain/digest"
	"github.com/barrycoin/barrycoin/foundation/blockchain/mempool"
	"github.com/barrycoin/barrycoin/foundation/validate"
)

// Default values used when the configuration leaves them unset.
const (
	DefaultDifficulty   = 3
	DefaultMiningReward = 1
)

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// =============================================================================

// Config represents the configuration required to start a ledger.
type Config struct {
	Difficulty   uint   `json:"difficulty" validate:"gte=1,lte=32"`
	MiningReward uint64 `json:"mining_reward" validate:"gte=1,lte=9223372036854775807"`
	Digester     digest.Digester
	EvHandler    EventHandler
}

// Ledger manages the chain of blocks and the transfers waiting to be mined.
type Ledger struct {
	difficulty   uint
	miningReward uint64
	digester     digest.Digester
	evHandler    EventHandler

	mu       sync.RWMutex
	chain    []*database.Block
	miningMu sync.Mutex
	mempool  *mempool.Mempool

	volumeMu sync.Mutex
	volume   uint64
}

// New constructs a ledger with a freshly created genesis block.
func New(cfg Config) (*Ledger, error) {
	if cfg.Difficulty == 0 {
		cfg.Difficulty = DefaultDifficulty
	}
	if cfg.MiningReward == 0 {
		cfg.MiningReward = DefaultMiningReward
	}
	if cfg.Digester == nil {
		cfg.Digester = digest.SHA256{}
	}

	if err := validate.Check(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	l := Ledger{
		difficulty:   cfg.Difficulty,
		miningReward: cfg.MiningReward,
		digester:     cfg.Digester,
		evHandler:    ev,
		mempool:      mempool.New(),
	}

	genesis := l.createGenesis()
	l.chain = []*database.Block{&genesis}

	ev("ledger: New: genesis: blk[%s]", genesis.Hash)

	return &l, nil
}

// createGenesis produces the first block of the chain.
func (l *Ledger) createGenesis() database.Block {
	return database.NewGenesisBlock(l.digester, time.Now())
}

// Difficulty returns the number of leading zeros a mined hash needs.
func (l *Ledger) Difficulty() uint {
	return l.difficulty
}

// MiningReward returns the amount paid to a miner for each block.
func (l *Ledger) MiningReward() uint64 {
	return l.miningReward
}

// LatestBlock returns a copy of the last block in the chain.
func (l *Ledger) LatestBlock() database.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.latestBlock().Clone()
}

// latestBlock returns the tip of the chain. The caller must hold the lock.
func (l *Ledger) latestBlock() *database.Block {
	if len(l.chain) == 0 {
		panic("ledger: chain has no genesis block")
	}

	return l.chain[len(l.chain)-1]
}

// SubmitTransfer validates the transfer and adds it to the end of the
// pending queue. The total amount ever accepted by the ledger is capped at
// database.MaxAmount so no balance can overflow.
func (l *Ledger) SubmitTransfer(tx database.Transfer) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	if err := l.reserveVolume(tx.Amount); err != nil {
		return err
	}

	n := l.mempool.Add(tx)
	l.evHandler("ledger: SubmitTransfer: tx[%s]: pending[%d]", tx, n)

	return nil
}

// reserveVolume adds the amount to the total accepted by the ledger. It
// fails when the total would no longer fit in a balance.
func (l *Ledger) reserveVolume(amount uint64) error {
	l.volumeMu.Lock()
	defer l.volumeMu.Unlock()

	if amount > database.MaxAmount-l.volume {
		return fmt.Errorf("%w: amount[%d] exceeds remaining ledger volume[%d]", database.ErrInvalidTransfer, amount, database.MaxAmount-l.volume)
	}

	l.volume += amount
	return nil
}

// issueVolume adds a system issued amount to the total. Rewards can't be
// refused so the total is held at database.MaxAmount.
func (l *Ledger) issueVolume(amount uint64) {
	l.volumeMu.Lock()
	defer l.volumeMu.Unlock()

	if amount > database.MaxAmount-l.volume {
		l.volume = database.MaxAmount
		return
	}

	l.volume += amount
}
