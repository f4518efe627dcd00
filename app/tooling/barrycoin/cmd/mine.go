package cmd

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var background bool

var mineCmd = &cobra.Command{
	Use:   "mine <miner>",
	Short: "Mine the pending transfers on behalf of a miner",
	Args:  cobra.ExactArgs(1),
	RunE:  mineRun,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the background mining operation",
	RunE:  cancelRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(cancelCmd)
	mineCmd.Flags().BoolVarP(&background, "background", "b", false, "Signal the node's worker instead of waiting for the block.")
}

func mineRun(cmd *cobra.Command, args []string) error {
	miner := url.PathEscape(args[0])

	if background {
		var s status
		if err := call(http.MethodPost, "/v1/mining/start/"+miner, nil, &s); err != nil {
			return err
		}

		pterm.Info.Println(s.Status)
		return nil
	}

	spinner, _ := pterm.DefaultSpinner.Start("mining pending transfers for " + args[0])

	var blk block
	if err := call(http.MethodPost, "/v1/mining/mine/"+miner, nil, &blk); err != nil {
		spinner.Fail(err.Error())
		return err
	}

	spinner.Success("block " + strconv.FormatUint(blk.Number, 10) + " mined")

	return printBlocks([]block{blk})
}

func cancelRun(cmd *cobra.Command, args []string) error {
	var s status
	if err := call(http.MethodPost, "/v1/mining/cancel", nil, &s); err != nil {
		return err
	}

	pterm.Info.Println(s.Status)
	return nil
}
