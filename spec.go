package optscan

import "fmt"

// OptSpec describes one recognized option letter.
type OptSpec struct {
	// The option letter, an ASCII alphanumeric.
	Char rune
	// HasArg marks an option whose value is the whole next token.
	HasArg bool
}

// Spec is the ordered table of option descriptors compiled from an
// optstring. Lookup is a linear scan, the table stays small.
type Spec []OptSpec

// SpecError reports a malformed optstring. It only ever points at a
// defect in the calling program's option declaration, not at user
// input.
type SpecError struct {
	Optstring string
	Pos       int
}

func (e SpecError) Error() string {
	return fmt.Sprintf("%s: invalid option specification at %d",
		e.Optstring,
		e.Pos,
	)
}

// Compile converts an optstring into a Spec. Each ASCII alphanumeric
// character declares an option letter; a ':' directly after a letter
// declares that the letter takes a value. Any other character, and a
// ':' with no letter before it, make the optstring malformed.
func Compile(optstring string) (Spec, error) {
	var spec Spec
	for i, c := range optstring {
		switch {
		case c == ':':
			if len(spec) == 0 {
				return nil, SpecError{Optstring: optstring, Pos: i}
			}
			spec[len(spec)-1].HasArg = true
		case alnum(c):
			spec = append(spec, OptSpec{Char: c})
		default:
			return nil, SpecError{Optstring: optstring, Pos: i}
		}
	}
	return spec, nil
}

// MustCompile is like Compile but panics if the optstring is
// malformed. Utilities declare their optstring as a literal, so this
// is the usual way to build a Spec.
func MustCompile(optstring string) Spec {
	spec, err := Compile(optstring)
	if err != nil {
		panic(err)
	}
	return spec
}

// Lookup finds the descriptor for option letter c.
func (s Spec) Lookup(c rune) (OptSpec, bool) {
	for _, o := range s {
		if o.Char == c {
			return o, true
		}
	}
	return OptSpec{}, false
}

func alnum(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	}
	return false
}
