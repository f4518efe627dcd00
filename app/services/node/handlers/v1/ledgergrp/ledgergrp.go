// Package ledgergrp maintains the group of handlers for ledger access.
package ledgergrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/barrycoin/barrycoin/business/web/errs"
	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
	"github.com/barrycoin/barrycoin/foundation/blockchain/ledger"
	"github.com/barrycoin/barrycoin/foundation/blockchain/worker"
	"github.com/barrycoin/barrycoin/foundation/events"
	"github.com/barrycoin/barrycoin/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	Worker *worker.Worker
	WS     websocket.Upgrader
	Evts   *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	id, ch := h.Evts.Subscribe()
	defer h.Evts.Unsubscribe(id)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitTransfer adds a new transfer to the pending queue.
func (h Handlers) SubmitTransfer(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var nt newTransfer
	if err := web.Decode(r, &nt); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	tx, err := database.NewTransfer(database.AccountID(nt.From), database.AccountID(nt.To), nt.Amount)
	if err != nil {
		return errs.FromLedger(err)
	}

	h.Log.Infow("submit transfer", "traceid", web.GetTraceID(ctx), "from", tx.From, "to", tx.To, "amount", tx.Amount)

	if err := h.Ledger.SubmitTransfer(tx); err != nil {
		return errs.FromLedger(err)
	}

	return web.Respond(ctx, w, status{Status: "transfer added to pending"}, http.StatusOK)
}

// Pending returns the set of transfers waiting to be mined.
func (h Handlers) Pending(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, toTransfers(h.Ledger.Pending()), http.StatusOK)
}

// Mine mines the pending transfers and blocks until the new block is added
// to the chain. The mining is abandoned if the client goes away.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	miner, err := database.ToAccountID(web.Param(r, "miner"))
	if err != nil {
		return errs.FromLedger(err)
	}

	h.Log.Infow("mine pending", "traceid", web.GetTraceID(ctx), "miner", miner)

	blk, err := h.Ledger.MinePending(ctx, miner)
	if err != nil {
		return errs.FromLedger(err)
	}

	return web.Respond(ctx, w, toBlock(blk), http.StatusOK)
}

// StartMining signals the worker to mine the pending transfers in
// the background.
func (h Handlers) StartMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	miner, err := database.ToAccountID(web.Param(r, "miner"))
	if err != nil {
		return errs.FromLedger(err)
	}

	if !h.Worker.SignalStartMining(miner) {
		return errs.NewTrusted(ledger.ErrMiningInProgress, http.StatusConflict)
	}

	return web.Respond(ctx, w, status{Status: "mining signaled"}, http.StatusAccepted)
}

// CancelMining signals the worker to abandon the mining operation in flight.
func (h Handlers) CancelMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Worker.SignalCancelMining()

	return web.Respond(ctx, w, status{Status: "mining cancel signaled"}, http.StatusAccepted)
}

// Balances returns the current balances for the specified account or for
// every account found in the chain.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var bals []balance

	switch acct := web.Param(r, "account"); acct {
	case "":
		for account, bal := range h.Ledger.Balances() {
			bals = append(bals, balance{Account: string(account), Balance: bal})
		}
		sort.Slice(bals, func(i, j int) bool { return bals[i].Account < bals[j].Account })

	default:
		account, err := database.ToAccountID(acct)
		if err != nil {
			return errs.FromLedger(err)
		}
		bals = append(bals, balance{Account: acct, Balance: h.Ledger.Balance(account)})
	}

	resp := balances{
		LatestBlock: h.Ledger.LatestBlock().Hash,
		Uncommitted: h.Ledger.PendingCount(),
		Balances:    bals,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Blocks returns every block in the chain.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	dbBlocks := h.Ledger.Blocks()

	blocks := make([]block, len(dbBlocks))
	for i, blk := range dbBlocks {
		blocks[i] = toBlock(blk)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// BlockByNumber returns the block at the specified position in the chain.
func (h Handlers) BlockByNumber(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	num, err := strconv.Atoi(web.Param(r, "number"))
	if err != nil {
		return errs.NewTrusted(fmt.Errorf("invalid block number: %w", err), http.StatusBadRequest)
	}

	blk, err := h.Ledger.Block(num)
	if err != nil {
		return errs.NewTrusted(err, http.StatusNotFound)
	}

	return web.Respond(ctx, w, toBlock(blk.Clone()), http.StatusOK)
}

// Verify checks the integrity of the chain.
func (h Handlers) Verify(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := verify{
		Valid:  h.Ledger.VerifyIntegrity(),
		Height: h.Ledger.Height(),
		Tip:    h.Ledger.LatestBlock().Hash,
	}

	if !resp.Valid {
		h.Log.Errorw("verify", "traceid", web.GetTraceID(ctx), "ERROR", errors.New("chain integrity check failed"))
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
