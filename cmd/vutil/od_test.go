package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseOffset(t *testing.T) {
	check := func(t *testing.T, in string, want int64) {
		t.Helper()
		got, err := parseOffset(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("parseOffset(%q) = %d, want %d", in, got, want)
		}
	}
	t.Run("octal", func(t *testing.T) { check(t, "100", 0o100) })
	t.Run("decimal", func(t *testing.T) { check(t, "100.", 100) })
	t.Run("octal blocks", func(t *testing.T) { check(t, "100b", 0o100*512) })
	t.Run("decimal blocks", func(t *testing.T) { check(t, "100.b", 100*512) })
	t.Run("plus sign", func(t *testing.T) { check(t, "+10", 8) })
	t.Run("garbage", func(t *testing.T) {
		if n, err := parseOffset("1z8"); err == nil {
			t.Errorf("parsed garbage offset as %d", n)
		}
	})
}

func fmtLine(format odFormat, data []byte) string {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	format(w, data)
	w.Flush()
	return buf.String()
}

func TestOdFormats(t *testing.T) {
	check := func(t *testing.T, format odFormat, data []byte, want string) {
		t.Helper()
		if got := fmtLine(format, data); got != want {
			t.Errorf("formatted %q, want %q", got, want)
		}
	}
	t.Run("octal bytes", func(t *testing.T) {
		check(t, odOctBytes, []byte{0, 1, 'A'}, " 000 001 101\n")
	})
	t.Run("octal words little endian", func(t *testing.T) {
		check(t, odWords("  %06o"), []byte{0x34, 0x12}, "  011064\n")
	})
	t.Run("odd trailing byte", func(t *testing.T) {
		check(t, odWords("  %06o"), []byte{0x34, 0x12, 0x01}, "  011064  000001\n")
	})
	t.Run("hex words", func(t *testing.T) {
		check(t, odWords("  %06x"), []byte{0x34, 0x12}, "  001234\n")
	})
	t.Run("decimal words", func(t *testing.T) {
		check(t, odWords("  %06d"), []byte{0x34, 0x12}, "  004660\n")
	})
	t.Run("ascii with escapes", func(t *testing.T) {
		check(t, odASCII, []byte{7, 'A', 200}, " \\g   A 310\n")
	})
}

func TestOd(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(file, []byte("abcdefgh"), 0666); err != nil {
		t.Fatal(err)
	}
	t.Run("dump", func(t *testing.T) {
		var buf bytes.Buffer
		err := od(&buf, file, 0, []odFormat{odWords("  %06o")})
		if err != nil {
			t.Fatal(err)
		}
		const want = "0000000  061141  062143  063145  064147\n0000010\n"
		if buf.String() != want {
			t.Errorf("dumped %q, want %q", buf.String(), want)
		}
	})
	t.Run("dump with offset", func(t *testing.T) {
		var buf bytes.Buffer
		err := od(&buf, file, 4, []odFormat{odWords("  %06o")})
		if err != nil {
			t.Fatal(err)
		}
		const want = "0000004  063145  064147\n0000010\n"
		if buf.String() != want {
			t.Errorf("dumped %q, want %q", buf.String(), want)
		}
	})
	t.Run("stacked formats", func(t *testing.T) {
		var buf bytes.Buffer
		err := od(&buf, file, 0, []odFormat{odWords("  %06o"), odOctBytes})
		if err != nil {
			t.Fatal(err)
		}
		const want = "0000000  061141  062143  063145  064147\n" +
			"        141 142 143 144 145 146 147 150\n" +
			"0000010\n"
		if buf.String() != want {
			t.Errorf("dumped %q, want %q", buf.String(), want)
		}
	})
}
