// Package worker implements the background mining workflow for the ledger.
package worker

import (
	"sync"
	"time"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
	"github.com/barrycoin/barrycoin/foundation/blockchain/ledger"
)

// DefaultMiningTimeout is how long a single mining operation can run
// before it's abandoned.
const DefaultMiningTimeout = 5 * time.Minute

// =============================================================================

// Config represents the configuration required to start the worker.
type Config struct {
	MiningTimeout time.Duration
	EvHandler     ledger.EventHandler
}

// Worker manages the POW workflows for the ledger.
type Worker struct {
	ledger        *ledger.Ledger
	wg            sync.WaitGroup
	shut          chan struct{}
	startMining   chan database.AccountID
	cancelMining  chan struct{}
	miningTimeout time.Duration
	evHandler     ledger.EventHandler
}

// Run creates a worker and starts up the mining G.
func Run(l *ledger.Ledger, cfg Config) *Worker {
	if cfg.MiningTimeout <= 0 {
		cfg.MiningTimeout = DefaultMiningTimeout
	}

	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	w := Worker{
		ledger:        l,
		shut:          make(chan struct{}),
		startMining:   make(chan database.AccountID, 1),
		cancelMining:  make(chan struct{}, 1),
		miningTimeout: cfg.MiningTimeout,
		evHandler:     ev,
	}

	// We don't want to return until we know the G is up and running.
	hasStarted := make(chan bool)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		hasStarted <- true
		w.miningOperations()
	}()

	<-hasStarted

	return &w
}

// Shutdown terminates the goroutine performing work.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.evHandler("worker: shutdown: signal cancel mining")
	w.SignalCancelMining()

	w.evHandler("worker: shutdown: terminate goroutines")
	close(w.shut)
	w.wg.Wait()
}

// SignalStartMining starts a mining operation paying the specified miner. If
// there is already a signal pending in the channel, the signal is dropped
// and false is returned since a mining operation will start.
func (w *Worker) SignalStartMining(miner database.AccountID) bool {
	select {
	case w.startMining <- miner:
		w.evHandler("worker: SignalStartMining: mining signaled: miner[%s]", miner)
		return true
	default:
		w.evHandler("worker: SignalStartMining: mining already signaled")
		return false
	}
}

// SignalCancelMining signals the G executing the runMiningOperation function
// to stop immediately.
func (w *Worker) SignalCancelMining() {
	select {
	case w.cancelMining <- struct{}{}:
	default:
	}
	w.evHandler("worker: SignalCancelMining: MINING: CANCEL: signaled")
}

// =============================================================================

// isShutdown is used to test if a shutdown has been signaled.
func (w *Worker) isShutdown() bool {
	select {
	case <-w.shut:
		return true
	default:
		return false
	}
}
