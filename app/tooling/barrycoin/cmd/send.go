package cmd

import (
	"net/http"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	from   string
	to     string
	amount uint64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transfer to the pending queue",
	RunE:  sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&from, "from", "f", "", "Account sending the amount.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Account receiving the amount.")
	sendCmd.Flags().Uint64VarP(&amount, "amount", "a", 0, "Amount to send.")
	sendCmd.MarkFlagRequired("from")
	sendCmd.MarkFlagRequired("to")
}

func sendRun(cmd *cobra.Command, args []string) error {
	tx := transfer{
		From:   from,
		To:     to,
		Amount: amount,
	}

	var s status
	if err := call(http.MethodPost, "/v1/transfers", tx, &s); err != nil {
		return err
	}

	pterm.Success.Printfln("%s: %s -> %s: %d", s.Status, from, to, amount)
	return nil
}
