package main

import "os"

// openIn opens the named file or, for "-", hands out the standard
// input. Seeking still works when stdin is redirected from a file.
func openIn(name string) (*os.File, error) {
	if name == "-" {
		return os.Stdin, nil
	}
	return os.Open(name)
}

func closeIn(f *os.File) {
	if f != os.Stdin {
		f.Close()
	}
}
