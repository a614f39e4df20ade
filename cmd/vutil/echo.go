package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	echoCmd.Run = runEcho
	rootCmd.AddCommand(&echoCmd.Command)
}

var echoCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:                "echo [arg ...]",
		Short:              "Print each argument on its own line",
		DisableFlagParsing: true,
	},
}

func runEcho(cmd *cobra.Command, args []string) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, arg := range args {
		fmt.Fprintln(w, arg)
	}
}
