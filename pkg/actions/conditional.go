package actions

import "fmt"

// ConditionalCopy denotes "retain the current source symbol". It carries no
// payload: the model reads the symbol being copied from its source context.
type ConditionalCopy[S comparable] struct{}

func (ConditionalCopy[S]) edit(S) {}
func (ConditionalCopy[S]) conditional(S) {}

func (c ConditionalCopy[S]) ConditionalCounterpart() ConditionalEdit[S] { return c }

func (ConditionalCopy[S]) String() string { return "COPY" }

// ConditionalSub denotes "emit New in place of the current source symbol".
type ConditionalSub[S comparable] struct {
	New S
}

func (ConditionalSub[S]) edit(S) {}
func (ConditionalSub[S]) conditional(S) {}

func (c ConditionalSub[S]) ConditionalCounterpart() ConditionalEdit[S] { return c }

func (c ConditionalSub[S]) String() string { return fmt.Sprintf("SUB(%v)", c.New) }

// ConditionalDel denotes "consume the current source symbol and emit
// nothing". Like ConditionalCopy it carries no payload.
type ConditionalDel[S comparable] struct{}

func (ConditionalDel[S]) edit(S) {}
func (ConditionalDel[S]) conditional(S) {}

func (c ConditionalDel[S]) ConditionalCounterpart() ConditionalEdit[S] { return c }

func (ConditionalDel[S]) String() string { return "DEL" }

// ConditionalIns denotes "emit New without consuming a source symbol".
type ConditionalIns[S comparable] struct {
	New S
}

func (ConditionalIns[S]) edit(S) {}
func (ConditionalIns[S]) conditional(S) {}

func (c ConditionalIns[S]) ConditionalCounterpart() ConditionalEdit[S] { return c }

func (c ConditionalIns[S]) String() string { return fmt.Sprintf("INS(%v)", c.New) }
