package database_test

import (
	"errors"
	"math"
	"testing"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_NewTransfer(t *testing.T) {
	type table struct {
		name   string
		from   database.AccountID
		to     database.AccountID
		amount uint64
		valid  bool
	}

	tt := []table{
		{name: "basic", from: "Barry", to: "Frank", amount: 100, valid: true},
		{name: "zero", from: "Frank", to: "pizzero", amount: 0, valid: true},
		{name: "nosender", from: "", to: "Frank", amount: 100, valid: false},
		{name: "norecipient", from: "Barry", to: "", amount: 100, valid: false},
		{name: "maxamount", from: "Barry", to: "Frank", amount: database.MaxAmount, valid: true},
		{name: "overmaxamount", from: "Barry", to: "Frank", amount: database.MaxAmount + 1, valid: false},
		{name: "maxuint", from: "Barry", to: "Frank", amount: math.MaxUint64, valid: false},
	}

	t.Log("Given the need to validate transfers at construction.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s transfer.", testID, tst.name)
			{
				f := func(t *testing.T) {
					tx, err := database.NewTransfer(tst.from, tst.to, tst.amount)

					switch tst.valid {
					case true:
						if err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould be able to construct the transfer: %v", failed, testID, err)
						}
						t.Logf("\t%s\tTest %d:\tShould be able to construct the transfer.", success, testID)

						if tx.IsReward() {
							t.Fatalf("\t%s\tTest %d:\tShould not be a reward transfer.", failed, testID)
						}
						t.Logf("\t%s\tTest %d:\tShould not be a reward transfer.", success, testID)

					default:
						if !errors.Is(err, database.ErrInvalidTransfer) {
							t.Logf("\t%s\tTest %d:\tgot: %v", failed, testID, err)
							t.Fatalf("\t%s\tTest %d:\tShould reject the transfer.", failed, testID)
						}
						t.Logf("\t%s\tTest %d:\tShould reject the transfer: %v", success, testID, err)
					}
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_Reward(t *testing.T) {
	t.Log("Given the need to issue mining rewards.")
	{
		tx := database.NewReward("Bruno", 1)

		if !tx.IsReward() {
			t.Fatalf("\t%s\tShould be marked as a reward.", failed)
		}
		t.Logf("\t%s\tShould be marked as a reward.", success)

		if err := tx.Validate(); !errors.Is(err, database.ErrInvalidTransfer) {
			t.Fatalf("\t%s\tShould not pass user validation without a sender.", failed)
		}
		t.Logf("\t%s\tShould not pass user validation without a sender.", success)

		tx.SetAmount(50000)
		if tx.Amount != 50000 {
			t.Fatalf("\t%s\tShould be able to change the amount: got %d", failed, tx.Amount)
		}
		t.Logf("\t%s\tShould be able to change the amount.", success)
	}
}
