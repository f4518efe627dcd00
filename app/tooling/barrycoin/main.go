// This program drives a barrycoin ledger, either in-process with the demo
// command or against a running node.
package main

import (
	"github.com/barrycoin/barrycoin/app/tooling/barrycoin/cmd"
)

func main() {
	cmd.Execute()
}
