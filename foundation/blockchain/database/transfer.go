package database

import (
	"fmt"

	"github.com/barrycoin/barrycoin/foundation/validate"
)

// Transfer represents the movement of value between two accounts.
type Transfer struct {
	From   AccountID `json:"from,omitempty" validate:"required,max=64"`
	To     AccountID `json:"to" validate:"required,max=64"`
	Amount uint64    `json:"amount" validate:"lte=9223372036854775807"`
}

// NewTransfer constructs a transfer between two accounts and validates it
// before it can be handed to the ledger.
func NewTransfer(from AccountID, to AccountID, amount uint64) (Transfer, error) {
	tx := Transfer{
		From:   from,
		To:     to,
		Amount: amount,
	}

	if err := tx.Validate(); err != nil {
		return Transfer{}, err
	}

	return tx, nil
}

// NewReward constructs a transfer issued by the system to pay a miner.
func NewReward(to AccountID, amount uint64) Transfer {
	return Transfer{
		To:     to,
		Amount: amount,
	}
}

// Validate checks the transfer is well formed. Only the system can
// issue a transfer without a sender.
func (tx Transfer) Validate() error {
	if err := validate.Check(tx); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransfer, err)
	}

	return nil
}

// IsReward tests if the transfer was issued by the system.
func (tx Transfer) IsReward() bool {
	return tx.From == ""
}

// SetAmount replaces the amount being transferred. Changing the amount of a
// transfer already mined into a block breaks that block's hash.
func (tx *Transfer) SetAmount(amount uint64) {
	tx.Amount = amount
}

// String implements the fmt.Stringer interface for logging.
func (tx Transfer) String() string {
	from := tx.From
	if tx.IsReward() {
		from = "<system>"
	}
	return fmt.Sprintf("%s->%s:%d", from, tx.To, tx.Amount)
}
