// Package actions defines the closed vocabulary of edit actions used to
// describe how a source symbol sequence is transformed into a target
// sequence: substitute, copy, delete, insert, plus the start/end sentinels
// bounding a sequence.
//
// Edits come in two flavors. Generative edits carry both the source ("old")
// and target ("new") symbols; an oracle that has aligned a known
// (source, target) pair emits these. Conditional edits carry only what a
// model can observe before it has seen the target; they are the model's
// output space at inference time. Every generative edit reduces to exactly
// one conditional edit via ConditionalCounterpart.
//
// All edit values are immutable, compare by value, and are safe to use as
// map keys and to share across goroutines without synchronization.
package actions

// Bos and Eos are the display tokens of the sequence sentinels. They become
// vocabulary entries in downstream tokenizer/embedding tables, so the exact
// literals are part of the contract.
const (
	Bos = "<BOS>"
	Eos = "<EOS>"
)

// Edit is a single step in an edit sequence over symbols of type S. Symbols
// are opaque atoms (runes, phonemes, token ids); this package never
// inspects their structure. The interface is sealed: the set of edit kinds
// is closed.
type Edit[S comparable] interface {
	// String renders the edit for logs and vocabulary files.
	String() string

	edit(S)
}

// ConditionalEdit is an action a model may predict without knowing the
// ground-truth target symbol.
type ConditionalEdit[S comparable] interface {
	Edit[S]

	// ConditionalCounterpart returns the receiver unchanged: conditional
	// edits are already in conditional form. Having the method here lets a
	// pipeline project any mix of edits uniformly.
	ConditionalCounterpart() ConditionalEdit[S]

	conditional(S)
}

// GenerativeEdit is an action an oracle emits while aligning a known
// (source, target) pair.
type GenerativeEdit[S comparable] interface {
	Edit[S]

	// ConditionalCounterpart reduces the edit to the conditional action a
	// model would have to predict to reproduce it. The mapping is fixed:
	//
	//	Sub(old, new) -> ConditionalSub(new)
	//	Copy(old, new) -> ConditionalCopy
	//	Del(old)       -> ConditionalDel
	//	Ins(new)       -> ConditionalIns(new)
	//
	// Copy and Del discard their symbols on purpose: a model deciding to
	// copy or delete reads the current source symbol from context rather
	// than re-predicting it. Sub and Ins keep "new" because the model must
	// predict the emitted symbol itself.
	ConditionalCounterpart() ConditionalEdit[S]

	generative(S)
}

// Start marks the beginning of an edit sequence. It carries no payload;
// the model learns it as the fixed first action.
type Start[S comparable] struct{}

func (Start[S]) edit(S) {}

func (Start[S]) String() string { return Bos }

// End marks the end of an edit sequence; the model predicts it to stop.
type End[S comparable] struct{}

func (End[S]) edit(S) {}

func (End[S]) String() string { return Eos }

// Counterparts projects an edit sequence onto the conditional action space.
// Generative edits are reduced, conditional edits and sentinels pass
// through unchanged. This is how oracle-derived supervision is turned into
// the label space the model trains against.
func Counterparts[S comparable](seq []Edit[S]) []Edit[S] {
	if seq == nil {
		return nil
	}
	out := make([]Edit[S], len(seq))
	for i, e := range seq {
		if g, ok := e.(GenerativeEdit[S]); ok {
			out[i] = g.ConditionalCounterpart()
		} else {
			out[i] = e
		}
	}
	return out
}
