package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fractalqb/optscan"
	"github.com/spf13/cobra"
)

func init() {
	catCmd.Run = runCat
	rootCmd.AddCommand(&catCmd.Command)
}

var catCmd = struct {
	cobra.Command
	unbuffered bool
}{
	Command: cobra.Command{
		Use:                "cat [-u] [file ...]",
		Short:              "Concatenate files to standard output",
		DisableFlagParsing: true,
	},
}

func runCat(cmd *cobra.Command, args []string) {
	var files []string
	scn := optscan.New("u", args)
	for {
		opt, err := scn.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			scanFail(cmd, err)
		}
		switch opt.Kind {
		case optscan.Flag:
			catCmd.unbuffered = true
		case optscan.Operand:
			files = append(files, opt.Arg)
		}
	}
	if len(files) == 0 {
		files = []string{"-"}
	}
	var out io.Writer = os.Stdout
	if !catCmd.unbuffered {
		bw := bufio.NewWriter(os.Stdout)
		defer bw.Flush()
		out = bw
	}
	for _, f := range files {
		if err := cat(out, f); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", f, err)
		}
	}
}

func cat(dst io.Writer, name string) error {
	in, err := openIn(name)
	if err != nil {
		return err
	}
	defer closeIn(in)
	_, err = io.Copy(dst, in)
	return err
}
