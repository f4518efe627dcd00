// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/barrycoin/barrycoin/app/services/node/handlers/v1/ledgergrp"
	"github.com/barrycoin/barrycoin/foundation/blockchain/ledger"
	"github.com/barrycoin/barrycoin/foundation/blockchain/worker"
	"github.com/barrycoin/barrycoin/foundation/events"
	"github.com/barrycoin/barrycoin/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	Worker *worker.Worker
	Evts   *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	lgh := ledgergrp.Handlers{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
		Worker: cfg.Worker,
		WS:     websocket.Upgrader{},
		Evts:   cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", lgh.Events)
	app.Handle(http.MethodPost, version, "/transfers", lgh.SubmitTransfer)
	app.Handle(http.MethodGet, version, "/transfers/pending", lgh.Pending)
	app.Handle(http.MethodPost, version, "/mining/mine/:miner", lgh.Mine)
	app.Handle(http.MethodPost, version, "/mining/start/:miner", lgh.StartMining)
	app.Handle(http.MethodPost, version, "/mining/cancel", lgh.CancelMining)
	app.Handle(http.MethodGet, version, "/balances", lgh.Balances)
	app.Handle(http.MethodGet, version, "/balances/:account", lgh.Balances)
	app.Handle(http.MethodGet, version, "/blocks", lgh.Blocks)
	app.Handle(http.MethodGet, version, "/blocks/:number", lgh.BlockByNumber)
	app.Handle(http.MethodGet, version, "/chain/verify", lgh.Verify)
}
