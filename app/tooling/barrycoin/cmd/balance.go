package cmd

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [account]",
	Short: "Print the balance for an account or for every account",
	Args:  cobra.MaximumNArgs(1),
	RunE:  balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) error {
	path := "/v1/balances"
	if len(args) == 1 {
		path += "/" + url.PathEscape(args[0])
	}

	var bals balances
	if err := call(http.MethodGet, path, nil, &bals); err != nil {
		return err
	}

	data := pterm.TableData{{"Account", "Balance"}}
	for _, bal := range bals.Balances {
		data = append(data, []string{bal.Account, strconv.FormatInt(bal.Balance, 10)})
	}

	pterm.Info.Printfln("latest block[%s] uncommitted[%d]", bals.LatestBlock, bals.Uncommitted)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
