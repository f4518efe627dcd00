package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks [number]",
	Short: "Print the blocks in the chain",
	Args:  cobra.MaximumNArgs(1),
	RunE:  blocksRun,
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Print the transfers waiting to be mined",
	RunE:  pendingRun,
}

func init() {
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(pendingCmd)
}

func blocksRun(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if _, err := strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid block number %q", args[0])
		}

		var blk block
		if err := call(http.MethodGet, "/v1/blocks/"+args[0], nil, &blk); err != nil {
			return err
		}

		return printBlocks([]block{blk})
	}

	var blks []block
	if err := call(http.MethodGet, "/v1/blocks", nil, &blks); err != nil {
		return err
	}

	return printBlocks(blks)
}

func pendingRun(cmd *cobra.Command, args []string) error {
	var txs []transfer
	if err := call(http.MethodGet, "/v1/transfers/pending", nil, &txs); err != nil {
		return err
	}

	return printTransfers(txs)
}

func printBlocks(blks []block) error {
	data := pterm.TableData{{"Number", "Hash", "Previous", "Nonce", "Transfers"}}
	for _, blk := range blks {
		data = append(data, []string{
			strconv.FormatUint(blk.Number, 10),
			blk.Hash,
			blk.PreviousHash,
			strconv.FormatUint(blk.Nonce, 10),
			strconv.Itoa(len(blk.Transfers)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	for _, blk := range blks {
		if len(blk.Transfers) == 0 {
			continue
		}

		pterm.DefaultSection.WithLevel(2).Printfln("block %d", blk.Number)
		if err := printTransfers(blk.Transfers); err != nil {
			return err
		}
	}

	return nil
}

func printTransfers(txs []transfer) error {
	data := pterm.TableData{{"From", "To", "Amount"}}
	for _, tx := range txs {
		from := tx.From
		if from == "" {
			from = pterm.Gray("reward")
		}
		data = append(data, []string{from, tx.To, strconv.FormatUint(tx.Amount, 10)})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
