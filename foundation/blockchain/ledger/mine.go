package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
)

// Set of errors returned by the mining operation.
var (
	ErrMiningCancelled  = errors.New("mining cancelled")
	ErrMiningInProgress = errors.New("mining already in progress")
)

// MinePending takes every pending transfer, mines them into a new block and
// appends that block to the chain. Once the block is appended the miner's
// reward is queued in front of any transfers that arrived while mining.
//
// If the context is cancelled the candidate block is discarded and the
// pending transfers are put back.
func (l *Ledger) MinePending(ctx context.Context, miner database.AccountID) (database.Block, error) {
	if _, err := database.ToAccountID(string(miner)); err != nil {
		return database.Block{}, fmt.Errorf("miner: %w", err)
	}

	// Only one mining operation can be in flight against the chain.
	if !l.miningMu.TryLock() {
		return database.Block{}, ErrMiningInProgress
	}
	defer l.miningMu.Unlock()

	l.evHandler("ledger: MinePending: MINING: started: miner[%s]", miner)
	defer l.evHandler("ledger: MinePending: MINING: completed")

	trans := l.mempool.Take()
	prevHash := l.LatestBlock().Hash

	block := database.NewBlock(l.digester, time.Now(), trans, prevHash)

	l.evHandler("ledger: MinePending: MINING: perform POW: txs[%d]", len(trans))

	if err := block.Mine(ctx, l.difficulty, l.evHandler); err != nil {
		l.mempool.Restore(trans)
		l.evHandler("ledger: MinePending: MINING: CANCEL: txs[%d] restored", len(trans))
		return database.Block{}, fmt.Errorf("%w: %w", ErrMiningCancelled, err)
	}

	l.evHandler("ledger: MinePending: MINING: update local state")

	l.mu.Lock()
	{
		block.Number = uint64(len(l.chain))
		blk := block.Clone()
		l.chain = append(l.chain, &blk)
	}
	l.mu.Unlock()

	reward := database.NewReward(miner, l.miningReward)
	l.issueVolume(reward.Amount)
	l.mempool.Restore([]database.Transfer{reward})

	l.evHandler("ledger: MinePending: MINING: reward queued: tx[%s]", reward)

	return block, nil
}
