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
	wcCmd.Run = runWc
	rootCmd.AddCommand(&wcCmd.Command)
}

var wcCmd = struct {
	cobra.Command
	lines bool
	words bool
	chars bool
}{
	Command: cobra.Command{
		Use:                "wc [-clw] [file ...]",
		Short:              "Count lines, words and bytes",
		DisableFlagParsing: true,
	},
}

// counts is an io.Writer sink, feeding it the input does the
// counting. Words are maximal runs of non-whitespace bytes.
type counts struct {
	lines, words, chars int
	inWord              bool
}

func (c *counts) Write(p []byte) (int, error) {
	for _, b := range p {
		switch b {
		case ' ', '\t', '\n', '\v', '\r':
			c.inWord = false
			if b == '\n' {
				c.lines++
			}
		default:
			if !c.inWord {
				c.inWord = true
				c.words++
			}
		}
	}
	c.chars += len(p)
	return len(p), nil
}

func (c *counts) add(o *counts) {
	c.lines += o.lines
	c.words += o.words
	c.chars += o.chars
}

// report writes one output row: the selected counts in line, word,
// byte order, then the name.
func (c *counts) report(w io.Writer, name string) {
	if wcCmd.lines {
		fmt.Fprintf(w, "%7d ", c.lines)
	}
	if wcCmd.words {
		fmt.Fprintf(w, "%7d ", c.words)
	}
	if wcCmd.chars {
		fmt.Fprintf(w, "%7d ", c.chars)
	}
	fmt.Fprintln(w, name)
}

func runWc(cmd *cobra.Command, args []string) {
	var files []string
	scn := optscan.New("clw", args)
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
			case 'c':
				wcCmd.chars = true
			case 'l':
				wcCmd.lines = true
			case 'w':
				wcCmd.words = true
			}
		case optscan.Operand:
			files = append(files, opt.Arg)
		}
	}
	if !wcCmd.lines && !wcCmd.words && !wcCmd.chars {
		wcCmd.lines, wcCmd.words, wcCmd.chars = true, true, true
	}
	if len(files) == 0 {
		files = []string{"-"}
	}
	var total counts
	for _, f := range files {
		c, err := wc(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wc: %s: %s\n", f, err)
			continue
		}
		c.report(os.Stdout, f)
		total.add(c)
	}
	if len(files) > 1 {
		total.report(os.Stdout, "total")
	}
}

func wc(name string) (*counts, error) {
	in, err := openIn(name)
	if err != nil {
		return nil, err
	}
	defer closeIn(in)
	var c counts
	if _, err = io.Copy(&c, in); err != nil {
		return nil, err
	}
	return &c, nil
}
