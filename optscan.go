package optscan

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Kind tags the variants of a scanned item.
type Kind int

const (
	// Flag is an option without a value.
	Flag Kind = iota
	// FlagArg is an option whose value is the whole token after it.
	FlagArg
	// Operand is a token that is neither an option nor an option value.
	Operand
)

// Opt is one item of the scanned option stream.
type Opt struct {
	Kind Kind
	// The option letter for Flag and FlagArg items.
	Char rune
	// The option value for FlagArg items, the verbatim token for
	// Operand items.
	Arg string
}

func (o Opt) String() string {
	switch o.Kind {
	case Flag:
		return fmt.Sprintf("-%c", o.Char)
	case FlagArg:
		return fmt.Sprintf("-%c %s", o.Char, o.Arg)
	}
	return o.Arg
}

// UnknownOptionError reports an option letter that is not in the
// scanner's Spec.
type UnknownOptionError rune

func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("-%c: unknown option", rune(e))
}

// MissingArgError reports an option that takes a value but appeared at
// the end of the argument vector.
type MissingArgError rune

func (e MissingArgError) Error() string {
	return fmt.Sprintf("-%c: expected an argument", rune(e))
}

// ErrNoOptionLetter reports a token that is a single '-' with no
// option letter after it.
var ErrNoOptionLetter = errors.New("missing option letter")

// Scanner resolves an argument vector into a stream of options,
// option values and operands. It works strictly left to right, pulls
// one token at a time and never reads a token twice. A Scanner is for
// a single pass over a single argument vector; it must not be shared
// between goroutines.
type Scanner struct {
	spec     Spec
	args     []string
	next     int
	optsDone bool
	// letters of the token currently being decomposed
	cluster string
	pos     int
}

// Scan creates a Scanner that resolves args against the compiled
// spec. args must not include the program name.
func (s Spec) Scan(args []string) *Scanner {
	return &Scanner{spec: s, args: args}
}

// New compiles optstring and creates a Scanner over args in one step.
// Like MustCompile it panics on a malformed optstring.
func New(optstring string, args []string) *Scanner {
	return MustCompile(optstring).Scan(args)
}

// Next returns the next item of the option stream. It returns io.EOF
// after the last token is consumed. The per-item errors
// UnknownOptionError, MissingArgError and ErrNoOptionLetter leave the
// Scanner intact, scanning simply continues with the next call. What
// to report and whether to keep going is the caller's decision.
func (s *Scanner) Next() (Opt, error) {
	if s.pos < len(s.cluster) {
		return s.resolve()
	}
	tok, ok := s.pull()
	if !ok {
		return Opt{}, io.EOF
	}
	return s.token(tok)
}

// token classifies a freshly pulled token.
func (s *Scanner) token(tok string) (Opt, error) {
	if s.optsDone {
		return Opt{Kind: Operand, Arg: tok}, nil
	}
	switch {
	case tok == "--":
		// consumed silently, everything after it is an operand
		s.optsDone = true
		tok, ok := s.pull()
		if !ok {
			return Opt{}, io.EOF
		}
		return Opt{Kind: Operand, Arg: tok}, nil
	case len(tok) > 1 && tok[0] == '-':
		s.cluster, s.pos = tok[1:], 0
		return s.resolve()
	case tok == "-":
		return Opt{}, ErrNoOptionLetter
	}
	// The first bare operand ends option scanning for good, later
	// tokens stay operands even when they start with '-'.
	s.optsDone = true
	return Opt{Kind: Operand, Arg: tok}, nil
}

// resolve decodes the next letter of the current cluster.
func (s *Scanner) resolve() (Opt, error) {
	c, size := utf8.DecodeRuneInString(s.cluster[s.pos:])
	s.pos += size
	opt, ok := s.spec.Lookup(c)
	if !ok {
		return Opt{}, UnknownOptionError(c)
	}
	if !opt.HasArg {
		return Opt{Kind: Flag, Char: c}, nil
	}
	arg, ok := s.pull()
	if !ok {
		return Opt{}, MissingArgError(c)
	}
	// The value is the whole next token, never the rest of the
	// cluster. Leftover cluster letters are dropped.
	s.cluster, s.pos = "", 0
	return Opt{Kind: FlagArg, Char: c, Arg: arg}, nil
}

func (s *Scanner) pull() (string, bool) {
	if s.next >= len(s.args) {
		return "", false
	}
	tok := s.args[s.next]
	s.next++
	return tok, true
}
