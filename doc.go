/*
Package optscan resolves command line argument vectors in the manner
of POSIX getopt(3), but as a lazy stream of tagged items instead of a
stateful C function with globals. A caller compiles a compact
optstring into a table of option descriptors, puts a Scanner on top of
its argument vector and then pulls one item after the other:

	scn := optscan.New("ab:", os.Args[1:])
	for {
		opt, err := scn.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			// -x unknown, -b without a value, bare "-" …
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		switch opt.Kind {
		case optscan.Flag:    // -a
		case optscan.FlagArg: // -b with opt.Arg
		case optscan.Operand: // everything else
		}
	}

The optstring lists the recognized option letters. A letter followed
by ':' takes a value; the value is always the complete next token of
the argument vector, never the remainder of the token the letter came
from. So with the optstring "ab:" the vector

	-ab hot cold

scans to the flag 'a', the option 'b' with value "hot" and the operand
"cold". Letters bundle into clusters: "-ab" means "-a -b" as long as
'a' takes no value.

Scanning options stops for good at the first token that does not start
with '-'. From then on every token is an operand, even tokens that
look like options. There is no GNU style permutation of options found
after an operand. The token "--" also stops option scanning; it is
consumed silently and never shows up in the stream.

Errors come in two tiers. A malformed optstring is a defect of the
calling program, not of its user: Compile refuses it and MustCompile
panics, no Scanner is produced. Everything the user can cause, like an
unknown letter, a value option in last position or a lone "-", is
yielded in stream order as an ordinary error value and scanning
continues afterwards. The package never writes to any output stream
and never terminates the process; reporting and exit codes are the
calling utility's business.

A Scanner makes a single pass. To scan the same vector again, make a
new Scanner.
*/
package optscan
