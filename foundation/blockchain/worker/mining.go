package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
	"github.com/barrycoin/barrycoin/foundation/blockchain/ledger"
)

// miningOperations handles mining.
func (w *Worker) miningOperations() {
	w.evHandler("worker: miningOperations: G started")
	defer w.evHandler("worker: miningOperations: G completed")

	for {
		select {
		case miner := <-w.startMining:
			if !w.isShutdown() {
				w.runMiningOperation(miner)
			}
		case <-w.shut:
			w.evHandler("worker: miningOperations: received shut signal")
			return
		}
	}
}

// runMiningOperation takes all the pending transfers from the ledger and
// mines them into a new block.
func (w *Worker) runMiningOperation(miner database.AccountID) {
	w.evHandler("worker: runMiningOperation: MINING: started")
	defer w.evHandler("worker: runMiningOperation: MINING: completed")

	// Make sure there are transfers waiting to be mined.
	length := w.ledger.PendingCount()
	if length == 0 {
		w.evHandler("worker: runMiningOperation: MINING: no transfers to mine: Txs[%d]", length)
		return
	}

	// Drain the cancel mining channel before starting.
	select {
	case <-w.cancelMining:
		w.evHandler("worker: runMiningOperation: MINING: drained cancel channel")
	default:
	}

	// The drain above can consume the cancel sent by Shutdown.
	if w.isShutdown() {
		w.evHandler("worker: runMiningOperation: MINING: shutdown signaled before start")
		return
	}

	// Create a context so mining can be cancelled or timeout.
	ctx, cancel := context.WithTimeout(context.Background(), w.miningTimeout)
	defer cancel()

	// Can't return from this function until these G's are complete.
	var wg sync.WaitGroup
	wg.Add(2)

	// This G exists to cancel the mining operation.
	go func() {
		defer func() {
			cancel()
			wg.Done()
		}()

		select {
		case <-w.cancelMining:
			w.evHandler("worker: runMiningOperation: MINING: CANCEL: requested")
		case <-w.shut:
			w.evHandler("worker: runMiningOperation: MINING: CANCEL: shutdown")
		case <-ctx.Done():
		}
	}()

	// This G is performing the mining.
	go func() {
		defer func() {
			cancel()
			wg.Done()
		}()

		t := time.Now()
		block, err := w.ledger.MinePending(ctx, miner)
		duration := time.Since(t)

		w.evHandler("worker: runMiningOperation: MINING: mining duration[%v]", duration)

		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrMiningInProgress):
				w.evHandler("worker: runMiningOperation: MINING: WARNING: mining already in progress")
			case errors.Is(err, context.DeadlineExceeded):
				w.evHandler("worker: runMiningOperation: MINING: TIMEOUT: after[%v]", w.miningTimeout)
			case errors.Is(err, ledger.ErrMiningCancelled):
				w.evHandler("worker: runMiningOperation: MINING: CANCEL: complete")
			default:
				w.evHandler("worker: runMiningOperation: MINING: ERROR: %s", err)
			}
			return
		}

		w.evHandler("viewer: block mined: hash[%s]: txs[%d]: miner[%s]", block.Hash, len(block.Transfers), miner)
	}()

	// Wait for both G's to terminate.
	wg.Wait()
}
