package cmd

import (
	"errors"
	"net/http"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the integrity of the node's chain",
	RunE:  verifyRun,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func verifyRun(cmd *cobra.Command, args []string) error {
	var v verify
	if err := call(http.MethodGet, "/v1/chain/verify", nil, &v); err != nil {
		return err
	}

	if !v.Valid {
		pterm.Error.Printfln("chain is NOT valid: height[%d] tip[%s]", v.Height, v.Tip)
		return errors.New("chain integrity check failed")
	}

	pterm.Success.Printfln("chain is valid: height[%d] tip[%s]", v.Height, v.Tip)
	return nil
}
