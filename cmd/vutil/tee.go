package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fractalqb/optscan"
	"github.com/spf13/cobra"
)

func init() {
	teeCmd.Run = runTee
	rootCmd.AddCommand(&teeCmd.Command)
}

var teeCmd = struct {
	cobra.Command
	appendTo bool
}{
	Command: cobra.Command{
		Use:                "tee [-a] [file ...]",
		Short:              "Copy standard input to standard output and files",
		DisableFlagParsing: true,
	},
}

func runTee(cmd *cobra.Command, args []string) {
	var files []string
	scn := optscan.New("a", args)
	for {
		opt, err := scn.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			scanFail(cmd, err)
		}
		switch opt.Kind {
		case optscan.Flag:
			teeCmd.appendTo = true
		case optscan.Operand:
			files = append(files, opt.Arg)
		}
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if teeCmd.appendTo {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	ws := []io.Writer{os.Stdout}
	for _, name := range files {
		f, err := os.OpenFile(name, flags, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tee: %s: %s\n", name, err)
			continue
		}
		defer f.Close()
		ws = append(ws, f)
	}
	if _, err := io.Copy(io.MultiWriter(ws...), os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "tee: %s\n", err)
		os.Exit(1)
	}
}
