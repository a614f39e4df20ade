package optscan

import (
	"errors"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestCompile(t *testing.T) {
	t.Run("letters and values", func(t *testing.T) {
		spec := testerr.Shall1(Compile("ab:c")).BeNil(t)
		want := Spec{
			{Char: 'a'},
			{Char: 'b', HasArg: true},
			{Char: 'c'},
		}
		if !slices.Equal(spec, want) {
			t.Errorf("compiled %v, want %v", spec, want)
		}
	})
	t.Run("empty optstring", func(t *testing.T) {
		spec := testerr.Shall1(Compile("")).BeNil(t)
		if len(spec) != 0 {
			t.Errorf("compiled %v from empty optstring", spec)
		}
	})
	t.Run("repeated colon", func(t *testing.T) {
		spec := testerr.Shall1(Compile("a::")).BeNil(t)
		if !slices.Equal(spec, Spec{{Char: 'a', HasArg: true}}) {
			t.Errorf("compiled %v", spec)
		}
	})
	t.Run("leading colon", func(t *testing.T) {
		_, err := Compile(":a")
		var spErr SpecError
		if !errors.As(err, &spErr) {
			t.Fatalf("expect SpecError, have %v", err)
		}
		if spErr.Pos != 0 {
			t.Errorf("error at %d, want 0", spErr.Pos)
		}
	})
	t.Run("invalid character", func(t *testing.T) {
		_, err := Compile("ab!c")
		var spErr SpecError
		if !errors.As(err, &spErr) {
			t.Fatalf("expect SpecError, have %v", err)
		}
		if spErr.Pos != 2 {
			t.Errorf("error at %d, want 2", spErr.Pos)
		}
	})
}

func TestMustCompile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic from malformed optstring")
		}
	}()
	MustCompile(":")
}

func TestSpec_Lookup(t *testing.T) {
	spec := testerr.Shall1(Compile("xy:z")).BeNil(t)
	o, ok := spec.Lookup('y')
	if !ok || !o.HasArg {
		t.Errorf("lookup 'y': %v %t", o, ok)
	}
	if o, ok = spec.Lookup('x'); !ok || o.HasArg {
		t.Errorf("lookup 'x': %v %t", o, ok)
	}
	if _, ok = spec.Lookup('q'); ok {
		t.Error("found undeclared option 'q'")
	}
}
