package database_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
	"github.com/barrycoin/barrycoin/foundation/blockchain/digest"
)

func transfers(t *testing.T) []database.Transfer {
	tx1, err := database.NewTransfer("Barry", "Frank", 100)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct a transfer: %v", failed, err)
	}

	tx2, err := database.NewTransfer("Frank", "pizzero", 50)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct a transfer: %v", failed, err)
	}

	return []database.Transfer{tx1, tx2}
}

func Test_Mine(t *testing.T) {
	t.Log("Given the need to mine blocks for a difficulty.")
	{
		for _, d := range []digest.Digester{digest.SHA256{}, digest.Keccak256{}} {
			for difficulty := uint(0); difficulty <= 3; difficulty++ {
				t.Logf("\tTest %d:\tWhen mining with %T.", difficulty, d)
				{
					b := database.NewBlock(d, time.Now(), transfers(t), "0")

					if err := b.Mine(context.Background(), difficulty, nil); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to mine the block: %v", failed, difficulty, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to mine the block.", success, difficulty)

					prefix := strings.Repeat("0", int(difficulty))
					if !strings.HasPrefix(b.Hash, prefix) {
						t.Fatalf("\t%s\tTest %d:\tShould have %d leading zeros: %s", failed, difficulty, difficulty, b.Hash)
					}
					t.Logf("\t%s\tTest %d:\tShould have %d leading zeros: %s", success, difficulty, difficulty, b.Hash)

					if b.Hash != b.ComputeHash() {
						t.Fatalf("\t%s\tTest %d:\tShould store the hash of the final nonce.", failed, difficulty)
					}
					t.Logf("\t%s\tTest %d:\tShould store the hash of the final nonce.", success, difficulty)
				}
			}
		}
	}
}

func Test_MineCancel(t *testing.T) {
	t.Log("Given the need to abandon a mining operation.")
	{
		b := database.NewBlock(digest.SHA256{}, time.Now(), transfers(t), "0")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := b.Mine(ctx, 64, nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("\t%s\tShould stop with a cancelled error: %v", failed, err)
		}
		t.Logf("\t%s\tShould stop with a cancelled error.", success)

		ctx, cancel = context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = b.Mine(ctx, 64, nil)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("\t%s\tShould stop when the deadline passes: %v", failed, err)
		}
		t.Logf("\t%s\tShould stop when the deadline passes.", success)
	}
}

func Test_ComputeHash(t *testing.T) {
	t.Log("Given the need to fingerprint a block.")
	{
		now := time.Now()
		b := database.NewBlock(digest.SHA256{}, now, transfers(t), "abc")

		if b.Nonce != 0 {
			t.Fatalf("\t%s\tShould start with a zero nonce.", failed)
		}
		t.Logf("\t%s\tShould start with a zero nonce.", success)

		if b.ComputeHash() != b.ComputeHash() || b.Hash != b.ComputeHash() {
			t.Fatalf("\t%s\tShould produce the same hash for the same block.", failed)
		}
		t.Logf("\t%s\tShould produce the same hash for the same block.", success)

		other := database.NewBlock(digest.SHA256{}, now, transfers(t), "abc")
		if other.Hash != b.Hash {
			t.Fatalf("\t%s\tShould produce the same hash for an identical block.", failed)
		}
		t.Logf("\t%s\tShould produce the same hash for an identical block.", success)

		trans := transfers(t)
		trans[0], trans[1] = trans[1], trans[0]
		reordered := database.NewBlock(digest.SHA256{}, now, trans, "abc")
		if reordered.Hash == b.Hash {
			t.Fatalf("\t%s\tShould produce a different hash when transfers are reordered.", failed)
		}
		t.Logf("\t%s\tShould produce a different hash when transfers are reordered.", success)

		stored := b.Hash
		b.Transfers[0].SetAmount(50000)
		if b.Hash != stored {
			t.Fatalf("\t%s\tShould not change the stored hash on tamper.", failed)
		}
		if b.ComputeHash() == stored {
			t.Fatalf("\t%s\tShould produce a different hash after a tamper.", failed)
		}
		t.Logf("\t%s\tShould produce a different hash after a tamper.", success)

		genesis := database.NewGenesisBlock(nil, now)
		if genesis.PreviousHash != database.GenesisPreviousHash || len(genesis.Transfers) != 0 {
			t.Fatalf("\t%s\tShould construct an empty genesis block linked to %q.", failed, database.GenesisPreviousHash)
		}
		t.Logf("\t%s\tShould construct an empty genesis block linked to %q.", success, database.GenesisPreviousHash)
	}
}

func Test_IsHashSolved(t *testing.T) {
	type table struct {
		difficulty uint
		hash       string
		solved     bool
	}

	tt := []table{
		{difficulty: 0, hash: "abc", solved: true},
		{difficulty: 2, hash: "00ab", solved: true},
		{difficulty: 3, hash: "00ab", solved: false},
		{difficulty: 5, hash: "0000", solved: false},
	}

	t.Log("Given the need to check the POW rules.")
	{
		for testID, tst := range tt {
			if got := database.IsHashSolved(tst.difficulty, tst.hash); got != tst.solved {
				t.Fatalf("\t%s\tTest %d:\tShould get %v for %q at %d.", failed, testID, tst.solved, tst.hash, tst.difficulty)
			}
			t.Logf("\t%s\tTest %d:\tShould get %v for %q at %d.", success, testID, tst.solved, tst.hash, tst.difficulty)
		}
	}
}
