package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fractalqb/optscan"
	"github.com/spf13/cobra"
)

func init() {
	rmCmd.Run = runRm
	rootCmd.AddCommand(&rmCmd.Command)
}

var rmCmd = struct {
	cobra.Command
	force     bool
	recursive bool
}{
	Command: cobra.Command{
		Use:                "rm [-f] [-r] file ...",
		Short:              "Remove files or directories",
		DisableFlagParsing: true,
	},
}

func runRm(cmd *cobra.Command, args []string) {
	var files []string
	scn := optscan.New("fr", args)
	for {
		opt, err := scn.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			scanFail(cmd, err)
		}
		switch opt.Kind {
		case optscan.Flag:
			switch opt.Char {
			case 'f':
				rmCmd.force = true
			case 'r':
				rmCmd.recursive = true
			}
		case optscan.Operand:
			files = append(files, opt.Arg)
		}
	}
	if len(files) == 0 {
		scanFail(cmd, errors.New("missing file operand"))
	}
	for _, f := range files {
		if err := rm(f, rmCmd.force, rmCmd.recursive); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", f, err)
		}
	}
}

func rm(name string, force, recursive bool) error {
	st, err := os.Stat(name)
	if err != nil {
		return err
	}
	if !force && st.Mode().Perm()&0200 == 0 {
		ok, err := confirm(fmt.Sprintf("rm: remove readonly file %s?", name))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if recursive {
		return os.RemoveAll(name)
	}
	return os.Remove(name)
}

// confirm asks on stdout and takes a leading 'y' on stdin as yes.
func confirm(msg string) (bool, error) {
	fmt.Printf("%s: ", msg)
	resp, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.HasPrefix(resp, "y"), nil
}
