package ledgergrp

import (
	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
)

type newTransfer struct {
	From   string `json:"from" validate:"required,max=64"`
	To     string `json:"to" validate:"required,max=64"`
	Amount uint64 `json:"amount" validate:"lte=9223372036854775807"`
}

type transfer struct {
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	Reward bool   `json:"reward"`
}

func toTransfer(tx database.Transfer) transfer {
	return transfer{
		From:   string(tx.From),
		To:     string(tx.To),
		Amount: tx.Amount,
		Reward: tx.IsReward(),
	}
}

func toTransfers(txs []database.Transfer) []transfer {
	trans := make([]transfer, len(txs))
	for i, tx := range txs {
		trans[i] = toTransfer(tx)
	}
	return trans
}

type block struct {
	Number       uint64     `json:"number"`
	PreviousHash string     `json:"previous_hash"`
	TimeStamp    uint64     `json:"timestamp"`
	Hash         string     `json:"hash"`
	Nonce        uint64     `json:"nonce"`
	Transfers    []transfer `json:"transfers"`
}

func toBlock(blk database.Block) block {
	return block{
		Number:       blk.Number,
		PreviousHash: blk.PreviousHash,
		TimeStamp:    blk.TimeStamp,
		Hash:         blk.Hash,
		Nonce:        blk.Nonce,
		Transfers:    toTransfers(blk.Transfers),
	}
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
