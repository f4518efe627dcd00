// Package database defines the values that make up the blockchain: the
// transfers that move value between accounts and the blocks that batch and
// link them together.
package database

import (
	"errors"
	"fmt"
	"math"

	"github.com/barrycoin/barrycoin/foundation/validate"
)

// ErrInvalidTransfer is returned when a transfer fails validation and
// can't be accepted by the ledger.
var ErrInvalidTransfer = errors.New("invalid transfer")

// GenesisPreviousHash is the previous hash stored in the genesis block.
const GenesisPreviousHash = "0"

// MaxAmount is the largest amount a single transfer can carry. Balances are
// signed so anything larger can't be accounted for.
const MaxAmount = math.MaxInt64

// AccountID represents an opaque identifier for a party on the ledger.
// The empty AccountID represents the system issuing mining rewards.
type AccountID string

// ToAccountID validates the string is usable as an identifier on the ledger.
func ToAccountID(id string) (AccountID, error) {
	acct := struct {
		ID string `json:"account" validate:"required,max=64"`
	}{
		ID: id,
	}

	if err := validate.Check(acct); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTransfer, err)
	}

	return AccountID(id), nil
}
