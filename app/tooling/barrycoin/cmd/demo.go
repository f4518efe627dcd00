package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/barrycoin/barrycoin/foundation/blockchain/database"
	"github.com/barrycoin/barrycoin/foundation/blockchain/digest"
	"github.com/barrycoin/barrycoin/foundation/blockchain/ledger"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	difficulty uint
	reward     uint64
	digestName string
	verbose    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scripted ledger scenario in-process",
	RunE:  demoRun,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().UintVarP(&difficulty, "difficulty", "d", ledger.DefaultDifficulty, "Leading zeros required in a mined hash.")
	demoCmd.Flags().Uint64VarP(&reward, "reward", "r", ledger.DefaultMiningReward, "Amount paid to a miner for each block.")
	demoCmd.Flags().StringVarP(&digestName, "digest", "g", digest.StrategySHA256, "Digest used to hash blocks (sha256, keccak256).")
	demoCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the ledger's mining events.")
}

func demoRun(cmd *cobra.Command, args []string) error {
	digester, err := digest.Retrieve(digestName)
	if err != nil {
		return err
	}

	ev := func(v string, args ...any) {
		if verbose {
			pterm.Debug.Printfln(v, args...)
		}
	}
	if verbose {
		pterm.EnableDebugMessages()
	}

	l, err := ledger.New(ledger.Config{
		Difficulty:   difficulty,
		MiningReward: reward,
		Digester:     digester,
		EvHandler:    ev,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pterm.DefaultSection.Println("Barry sends Frank 100, Bruno mines")
	if err := submit(l, "Barry", "Frank", 100); err != nil {
		return err
	}
	if err := mine(ctx, l, "Bruno"); err != nil {
		return err
	}
	if err := printBalances(l); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Frank sends pizzero 50, Bruno mines")
	if err := submit(l, "Frank", "pizzero", 50); err != nil {
		return err
	}
	if err := mine(ctx, l, "Bruno"); err != nil {
		return err
	}
	if err := printBalances(l); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Frank mines the pending reward")
	if err := mine(ctx, l, "Frank"); err != nil {
		return err
	}
	if err := printBalances(l); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Verify the chain")
	printVerify(l)

	pterm.DefaultSection.Println("Tamper with block 2")
	blk, err := l.Block(2)
	if err != nil {
		return err
	}
	if len(blk.Transfers) < 2 {
		return fmt.Errorf("block 2 holds %d transfers, expected 2", len(blk.Transfers))
	}

	pterm.Info.Println("before:\n" + spew.Sdump(blk.Transfers))
	blk.Transfers[1].SetAmount(50000)
	pterm.Info.Println("after:\n" + spew.Sdump(blk.Transfers))

	printVerify(l)

	return nil
}

func submit(l *ledger.Ledger, from string, to string, amount uint64) error {
	tx, err := database.NewTransfer(database.AccountID(from), database.AccountID(to), amount)
	if err != nil {
		return err
	}

	if err := l.SubmitTransfer(tx); err != nil {
		return err
	}

	pterm.Info.Printfln("submitted %s", tx)
	return nil
}

func mine(ctx context.Context, l *ledger.Ledger, miner string) error {
	spinner, _ := pterm.DefaultSpinner.Start("mining for " + miner)

	blk, err := l.MinePending(ctx, database.AccountID(miner))
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}

	spinner.Success(fmt.Sprintf("block %d mined: hash[%s] nonce[%d]", blk.Number, blk.Hash, blk.Nonce))
	return nil
}

func printBalances(l *ledger.Ledger) error {
	bals := l.Balances()

	accounts := make([]string, 0, len(bals))
	for account := range bals {
		accounts = append(accounts, string(account))
	}
	sort.Strings(accounts)

	data := pterm.TableData{{"Account", "Balance"}}
	for _, account := range accounts {
		data = append(data, []string{account, strconv.FormatInt(bals[database.AccountID(account)], 10)})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printVerify(l *ledger.Ledger) {
	if !l.VerifyIntegrity() {
		pterm.Error.Println("chain is NOT valid")
		return
	}

	pterm.Success.Println("chain is valid")
}
