package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type transfer struct {
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	Reward bool   `json:"reward,omitempty"`
}

type block struct {
	Number       uint64     `json:"number"`
	PreviousHash string     `json:"previous_hash"`
	TimeStamp    uint64     `json:"timestamp"`
	Hash         string     `json:"hash"`
	Nonce        uint64     `json:"nonce"`
	Transfers    []transfer `json:"transfers"`
}

type balance struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

type verify struct {
	Valid  bool   `json:"valid"`
	Height int    `json:"height"`
	Tip    string `json:"tip"`
}

type status struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// call sends the request to the node and decodes the response into resp.
// Error responses from the node are converted into a Go error.
func call(method string, path string, body any, resp any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	req, err := http.NewRequest(method, nodeURL+path, &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	r, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling node: %w", err)
	}
	defer r.Body.Close()

	if r.StatusCode >= http.StatusBadRequest {
		var er errorResponse
		if err := json.NewDecoder(r.Body).Decode(&er); err != nil {
			return fmt.Errorf("node responded %d", r.StatusCode)
		}
		if len(er.Fields) > 0 {
			return fmt.Errorf("%s: %v", er.Error, er.Fields)
		}
		return errors.New(er.Error)
	}

	if resp == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
