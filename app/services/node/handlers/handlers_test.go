package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/barrycoin/barrycoin/app/services/node/handlers"
	"github.com/barrycoin/barrycoin/foundation/blockchain/ledger"
	"github.com/barrycoin/barrycoin/foundation/blockchain/worker"
	"github.com/barrycoin/barrycoin/foundation/events"
	"go.uber.org/zap"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func newMux(t *testing.T) (http.Handler, *ledger.Ledger) {
	l, err := ledger.New(ledger.Config{Difficulty: 1})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct a ledger: %v", failed, err)
	}

	w := worker.Run(l, worker.Config{})
	t.Cleanup(w.Shutdown)

	mux, err := handlers.PublicMux(handlers.MuxConfig{
		Shutdown: make(chan os.Signal, 1),
		Log:      zap.NewNop().Sugar(),
		Ledger:   l,
		Worker:   w,
		Evts:     events.New(),
	})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the mux: %v", failed, err)
	}

	return mux, l
}

func call(t *testing.T, mux http.Handler, method string, path string, body string, exp int, resp any) {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != exp {
		t.Logf("\t%s\tgot: %d: %s", failed, w.Code, w.Body.String())
		t.Logf("\t%s\texp: %d", failed, exp)
		t.Fatalf("\t%s\tShould receive status %d for %s %s.", failed, exp, method, path)
	}
	t.Logf("\t%s\tShould receive status %d for %s %s.", success, exp, method, path)

	if resp != nil {
		if err := json.NewDecoder(w.Body).Decode(resp); err != nil {
			t.Fatalf("\t%s\tShould be able to unmarshal the response: %v", failed, err)
		}
	}
}

func TestLedgerAPI(t *testing.T) {
	t.Log("Given the need to drive the ledger over http.")
	{
		mux, l := newMux(t)

		call(t, mux, http.MethodPost, "/v1/transfers", `{"from":"Barry","to":"Frank","amount":100}`, http.StatusOK, nil)

		var pending []struct {
			From   string `json:"from"`
			To     string `json:"to"`
			Amount uint64 `json:"amount"`
		}
		call(t, mux, http.MethodGet, "/v1/transfers/pending", "", http.StatusOK, &pending)
		if len(pending) != 1 || pending[0].From != "Barry" {
			t.Fatalf("\t%s\tShould list the pending transfer: %v", failed, pending)
		}
		t.Logf("\t%s\tShould list the pending transfer.", success)

		var blk struct {
			Number int    `json:"number"`
			Hash   string `json:"hash"`
		}
		call(t, mux, http.MethodPost, "/v1/mining/mine/Bruno", "", http.StatusOK, &blk)
		if blk.Number != 1 || !strings.HasPrefix(blk.Hash, "0") {
			t.Fatalf("\t%s\tShould return the mined block: %+v", failed, blk)
		}
		t.Logf("\t%s\tShould return the mined block.", success)

		var bals struct {
			Uncommitted int `json:"uncommitted"`
			Balances    []struct {
				Account string `json:"account"`
				Balance int64  `json:"balance"`
			} `json:"balances"`
		}
		call(t, mux, http.MethodGet, "/v1/balances/Frank", "", http.StatusOK, &bals)
		if len(bals.Balances) != 1 || bals.Balances[0].Balance != 100 || bals.Uncommitted != 1 {
			t.Fatalf("\t%s\tShould return Frank's balance: %+v", failed, bals)
		}
		t.Logf("\t%s\tShould return Frank's balance.", success)

		var vfy struct {
			Valid  bool `json:"valid"`
			Height int  `json:"height"`
		}
		call(t, mux, http.MethodGet, "/v1/chain/verify", "", http.StatusOK, &vfy)
		if !vfy.Valid || vfy.Height != 2 {
			t.Fatalf("\t%s\tShould report a valid chain: %+v", failed, vfy)
		}
		t.Logf("\t%s\tShould report a valid chain.", success)

		blkPtr, _ := l.Block(1)
		blkPtr.Transfers[0].SetAmount(50000)

		call(t, mux, http.MethodGet, "/v1/chain/verify", "", http.StatusOK, &vfy)
		if vfy.Valid {
			t.Fatalf("\t%s\tShould report a tampered chain.", failed)
		}
		t.Logf("\t%s\tShould report a tampered chain.", success)

		call(t, mux, http.MethodGet, "/v1/blocks/1", "", http.StatusOK, nil)
		call(t, mux, http.MethodGet, "/v1/blocks/9", "", http.StatusNotFound, nil)
		call(t, mux, http.MethodGet, "/", "", http.StatusOK, nil)
		call(t, mux, http.MethodOptions, "/v1/transfers", "", http.StatusNoContent, nil)
	}

	t.Log("Given the need to reject bad requests.")
	{
		mux, l := newMux(t)

		var er struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		call(t, mux, http.MethodPost, "/v1/transfers", `{"from":"Barry","amount":100}`, http.StatusBadRequest, &er)
		if _, exists := er.Fields["to"]; !exists {
			t.Fatalf("\t%s\tShould report the missing recipient: %+v", failed, er)
		}
		t.Logf("\t%s\tShould report the missing recipient.", success)

		call(t, mux, http.MethodPost, "/v1/transfers", `{"from":"Barry","to":"Frank","amount":-5}`, http.StatusBadRequest, nil)

		er.Fields = nil
		call(t, mux, http.MethodPost, "/v1/transfers", `{"from":"Barry","to":"Frank","amount":18446744073709551615}`, http.StatusBadRequest, &er)
		if _, exists := er.Fields["amount"]; !exists {
			t.Fatalf("\t%s\tShould report the oversized amount: %+v", failed, er)
		}
		t.Logf("\t%s\tShould report the oversized amount.", success)

		if len(l.Pending()) != 0 {
			t.Fatalf("\t%s\tShould not queue rejected transfers.", failed)
		}
		t.Logf("\t%s\tShould not queue rejected transfers.", success)
	}
}
