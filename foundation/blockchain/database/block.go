package database

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/barrycoin/barrycoin/foundation/blockchain/digest"
)

// Block represents a group of transfers batched together and linked to the
// block that came before it.
type Block struct {
	Number       uint64     `json:"number"`        // Position in the chain, not part of the hash.
	PreviousHash string     `json:"previous_hash"` // Hash of the previous block in the chain.
	TimeStamp    uint64     `json:"timestamp"`     // Time the block was created in milliseconds.
	Transfers    []Transfer `json:"transfers"`     // Order matters, it is part of the hash.
	Hash         string     `json:"hash"`          // Hash of the fields above plus the nonce.
	Nonce        uint64     `json:"nonce"`         // Value identified to solve the hash solution.

	digester digest.Digester
}

// NewBlock constructs a block for the specified transfers. The block's hash
// is calculated with a nonce of zero and still needs to be mined.
func NewBlock(digester digest.Digester, timeStamp time.Time, transfers []Transfer, previousHash string) Block {
	if digester == nil {
		digester = digest.SHA256{}
	}

	trans := make([]Transfer, len(transfers))
	copy(trans, transfers)

	b := Block{
		PreviousHash: previousHash,
		TimeStamp:    uint64(timeStamp.UnixMilli()),
		Transfers:    trans,
		Nonce:        0,
		digester:     digester,
	}
	b.Hash = b.ComputeHash()

	return b
}

// NewGenesisBlock constructs the first block of the chain. The genesis block
// has no transfers and is never mined.
func NewGenesisBlock(digester digest.Digester, timeStamp time.Time) Block {
	return NewBlock(digester, timeStamp, nil, GenesisPreviousHash)
}

// ComputeHash returns the hash for the current state of the block. The
// stored hash is not changed.
func (b Block) ComputeHash() string {
	trans := b.Transfers
	if trans == nil {
		trans = []Transfer{}
	}

	data, err := json.Marshal(trans)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(b.PreviousHash)
	sb.WriteString(strconv.FormatUint(b.TimeStamp, 10))
	sb.Write(data)
	sb.WriteString(strconv.FormatUint(b.Nonce, 10))

	d := b.digester
	if d == nil {
		d = digest.SHA256{}
	}

	return d.Digest(sb.String())
}

// Mine does the work of finding a nonce that produces a hash with the
// specified number of leading zeros. Pointer semantics are being used since
// the nonce and hash are being discovered. The search only stops early when
// the context is cancelled or its deadline passes.
func (b *Block) Mine(ctx context.Context, difficulty uint, ev func(v string, args ...any)) error {
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	ev("database: Mine: MINING: started: difficulty[%d]", difficulty)
	defer ev("database: Mine: MINING: completed")

	// Log the transfers that are a part of this potential block.
	for _, tx := range b.Transfers {
		ev("database: Mine: MINING: tx[%s]", tx)
	}

	t := time.Now()

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: Mine: MINING: attempts[%d]", attempts)
		}

		// Did we timeout trying to solve the problem.
		if err := ctx.Err(); err != nil {
			ev("database: Mine: MINING: CANCELLED: attempts[%d]", attempts)
			return err
		}

		// Hash the block and check if we have solved the puzzle.
		b.Hash = b.ComputeHash()
		if !IsHashSolved(difficulty, b.Hash) {
			b.Nonce++
			continue
		}

		ev("database: Mine: MINING: SOLVED: prevBlk[%s]: newBlk[%s]: nonce[%d]", b.PreviousHash, b.Hash, b.Nonce)
		ev("database: Mine: MINING: attempts[%d]: duration[%v]", attempts, time.Since(t))

		return nil
	}
}

// Clone returns a copy of the block that shares no memory with the original.
func (b Block) Clone() Block {
	trans := make([]Transfer, len(b.Transfers))
	copy(trans, b.Transfers)
	b.Transfers = trans

	return b
}

// IsHashSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of 0's.
func IsHashSolved(difficulty uint, hash string) bool {
	if int(difficulty) > len(hash) {
		return false
	}

	return strings.Trim(hash[:difficulty], "0") == ""
}
