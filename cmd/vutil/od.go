package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fractalqb/optscan"
	"github.com/spf13/cobra"
)

func init() {
	odCmd.Run = runOd
	rootCmd.AddCommand(&odCmd.Command)
}

var odCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:                "od [-bcdho] [file] [[+]offset[.][b]]",
		Short:              "Dump a file byte or word wise",
		DisableFlagParsing: true,
	},
}

const odChunkSize = 16

// odFormat renders one chunk of input as one output line, without the
// leading offset column.
type odFormat func(w *bufio.Writer, data []byte)

func odOctBytes(w *bufio.Writer, data []byte) {
	for _, b := range data {
		fmt.Fprintf(w, " %03o", b)
	}
	fmt.Fprintln(w)
}

// odWords folds byte pairs into little endian 16 bit words. An odd
// byte at the end of the input counts as a word with high byte zero.
func odWords(format string) odFormat {
	return func(w *bufio.Writer, data []byte) {
		for i := 0; i < len(data); i += 2 {
			var hi byte
			if i+1 < len(data) {
				hi = data[i+1]
			}
			fmt.Fprintf(w, format, uint16(hi)<<8|uint16(data[i]))
		}
		fmt.Fprintln(w)
	}
}

func odASCII(w *bufio.Writer, data []byte) {
	for _, b := range data {
		switch b {
		case 7:
			fmt.Fprint(w, " \\g")
		case 8:
			fmt.Fprint(w, " \\b")
		case 9:
			fmt.Fprint(w, " \\t")
		case 10:
			fmt.Fprint(w, " \\n")
		case 11:
			fmt.Fprint(w, " \\v")
		case 12:
			fmt.Fprint(w, " \\f")
		case 13:
			fmt.Fprint(w, " \\r")
		default:
			if b < 32 || b > 126 {
				fmt.Fprintf(w, " %03o", b)
			} else {
				fmt.Fprintf(w, "   %c", b)
			}
		}
	}
	fmt.Fprintln(w)
}

// parseOffset reads the classic od offset operand [+]offset[.][b]:
// octal by default, decimal with a '.' suffix, multiplied by 512 with
// a 'b' suffix.
func parseOffset(s string) (int64, error) {
	mult := int64(1)
	base := 8
	if strings.HasSuffix(s, "b") {
		mult = 512
		s = s[:len(s)-1]
	}
	if strings.HasSuffix(s, ".") {
		base = 10
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, err
	}
	return n * mult, nil
}

func runOd(cmd *cobra.Command, args []string) {
	var fmts []odFormat
	var operands []string
	scn := optscan.New("bcdho", args)
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
			case 'b':
				fmts = append(fmts, odOctBytes)
			case 'c':
				fmts = append(fmts, odASCII)
			case 'd':
				fmts = append(fmts, odWords("  %06d"))
			case 'h':
				fmts = append(fmts, odWords("  %06x"))
			case 'o':
				fmts = append(fmts, odWords("  %06o"))
			}
		case optscan.Operand:
			operands = append(operands, opt.Arg)
		}
	}
	if len(fmts) == 0 {
		fmts = []odFormat{odWords("  %06o")}
	}
	file, offstr := "-", ""
	if len(operands) > 0 && strings.HasPrefix(operands[0], "+") {
		offstr = operands[0]
	} else if len(operands) > 0 {
		file = operands[0]
		if len(operands) > 1 {
			offstr = operands[1]
		}
	}
	var offset int64
	if offstr != "" {
		var err error
		if offset, err = parseOffset(offstr); err != nil {
			scanFail(cmd, fmt.Errorf("%s: %s", offstr, err))
		}
	}
	if err := od(os.Stdout, file, offset, fmts); err != nil {
		fmt.Fprintf(os.Stderr, "od: %s\n", err)
		os.Exit(1)
	}
}

func od(dst io.Writer, name string, offset int64, fmts []odFormat) error {
	in, err := openIn(name)
	if err != nil {
		return err
	}
	defer closeIn(in)
	if offset > 0 {
		if _, err := in.Seek(offset, io.SeekStart); err != nil {
			return err
		}
	}
	rd := bufio.NewReader(in)
	w := bufio.NewWriter(dst)
	chunk := make([]byte, odChunkSize)
	for {
		n, err := io.ReadFull(rd, chunk)
		if n > 0 {
			for i, format := range fmts {
				if i == 0 {
					fmt.Fprintf(w, "%07o", offset)
				} else {
					w.WriteString("       ")
				}
				format(w, chunk[:n])
			}
			offset += int64(n)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		} else if err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%07o\n", offset)
	return w.Flush()
}
