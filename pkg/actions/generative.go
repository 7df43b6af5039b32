package actions

import "fmt"

// Sub substitutes the source symbol Old with the target symbol New. Old and
// New are generally distinct; Copy is the validated old==new special case
// and must be used when the symbols are known to match.
type Sub[S comparable] struct {
	Old S
	New S
}

func (Sub[S]) edit(S) {}
func (Sub[S]) generative(S) {}

func (s Sub[S]) ConditionalCounterpart() ConditionalEdit[S] {
	return ConditionalSub[S]{New: s.New}
}

func (s Sub[S]) String() string { return fmt.Sprintf("SUB(%v->%v)", s.Old, s.New) }

// Copy retains a source symbol unchanged. It records both the source and
// target symbol, which must be equal; construct it through NewCopy. Fields
// are unexported so the equality invariant cannot be bypassed (the zero
// value satisfies it trivially).
type Copy[S comparable] struct {
	old S
	new S
}

// NewCopy builds a copy edit. It fails with ErrMalformedEdit when old and
// new differ: an unequal pair signals a bug in the calling aligner and is
// never silently downgraded to a Sub.
func NewCopy[S comparable](old, new S) (Copy[S], error) {
	if old != new {
		return Copy[S]{}, fmt.Errorf("%w: Copy: old=%v != new=%v", ErrMalformedEdit, old, new)
	}
	return Copy[S]{old: old, new: new}, nil
}

func (Copy[S]) edit(S) {}
func (Copy[S]) generative(S) {}

// Old returns the source symbol.
func (c Copy[S]) Old() S { return c.old }

// New returns the target symbol. Equal to Old by construction.
func (c Copy[S]) New() S { return c.new }

func (c Copy[S]) ConditionalCounterpart() ConditionalEdit[S] {
	return ConditionalCopy[S]{}
}

func (c Copy[S]) String() string { return fmt.Sprintf("COPY(%v)", c.old) }

// Del consumes the source symbol Old and produces nothing.
type Del[S comparable] struct {
	Old S
}

func (Del[S]) edit(S) {}
func (Del[S]) generative(S) {}

func (d Del[S]) ConditionalCounterpart() ConditionalEdit[S] {
	return ConditionalDel[S]{}
}

func (d Del[S]) String() string { return fmt.Sprintf("DEL(%v)", d.Old) }

// Ins produces the target symbol New without consuming a source symbol.
type Ins[S comparable] struct {
	New S
}

func (Ins[S]) edit(S) {}
func (Ins[S]) generative(S) {}

func (i Ins[S]) ConditionalCounterpart() ConditionalEdit[S] {
	return ConditionalIns[S]{New: i.New}
}

func (i Ins[S]) String() string { return fmt.Sprintf("INS(%v)", i.New) }
