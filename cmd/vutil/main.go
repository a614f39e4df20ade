// vutil bundles sixth-edition style unix utilities into one binary.
// Every subcommand parses its own options with optscan; cobra only
// dispatches and prints help.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = cobra.Command{
	Use:   "vutil",
	Short: "V6 style unix utilities in one binary",
	Long: `vutil bundles small V6/V7 style unix utilities in one binary.

The subcommands take classic single-letter options only. Option
letters bundle into clusters (-clw), an option value is always the
next argument, "--" ends option parsing and the first operand ends it
too: later arguments are file names even when they start with '-'.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scanFail reports a bad argument vector and exits. Utilities call it
// for every scan error, keeping the classic all-or-nothing behaviour.
func scanFail(cmd *cobra.Command, err error) {
	cmd.PrintErrf("%s: %s\n", cmd.Name(), err)
	cmd.PrintErrln("usage:", cmd.UseLine())
	os.Exit(2)
}
