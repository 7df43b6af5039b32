package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelIdentity(t *testing.T) {
	var start1 Edit[rune] = Start[rune]{}
	var start2 Edit[rune] = Start[rune]{}
	var end1 Edit[rune] = End[rune]{}
	var end2 Edit[rune] = End[rune]{}

	assert.True(t, start1 == start2, "any two Start values should be equal")
	assert.True(t, end1 == end2, "any two End values should be equal")
	assert.True(t, start1 != end1, "Start and End should never be equal")
}

func TestSentinelDisplayTokens(t *testing.T) {
	// These literals are vocabulary entries downstream and must match the
	// tokenizer's table exactly.
	assert.Equal(t, "<BOS>", Start[rune]{}.String())
	assert.Equal(t, "<EOS>", End[rune]{}.String())
	assert.Equal(t, "<BOS>", Start[string]{}.String())
	assert.Equal(t, "<EOS>", End[string]{}.String())
}

func TestConditionalCounterpartMapping(t *testing.T) {
	cp, err := NewCopy('x', 'x')
	require.NoError(t, err)

	tests := []struct {
		name string
		edit GenerativeEdit[rune]
		want ConditionalEdit[rune]
	}{
		{"Sub keeps new", Sub[rune]{Old: 'a', New: 'b'}, ConditionalSub[rune]{New: 'b'}},
		{"Copy discards both symbols", cp, ConditionalCopy[rune]{}},
		{"Del discards old", Del[rune]{Old: 'q'}, ConditionalDel[rune]{}},
		{"Ins keeps new", Ins[rune]{New: 'z'}, ConditionalIns[rune]{New: 'z'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.edit.ConditionalCounterpart()
			require.NotNil(t, got)
			assert.True(t, got == tc.want, "got %v, want %v", got, tc.want)
		})
	}
}

func TestConditionalCounterpartIsDeterministic(t *testing.T) {
	e := Sub[rune]{Old: 'a', New: 'b'}
	assert.True(t, e.ConditionalCounterpart() == e.ConditionalCounterpart())
}

// Conditional edits are already in conditional form; projecting one must be
// the identity so a pipeline can project mixed sequences uniformly.
func TestConditionalCounterpartIdentityOnConditionals(t *testing.T) {
	conditionals := []ConditionalEdit[rune]{
		ConditionalCopy[rune]{},
		ConditionalSub[rune]{New: 'b'},
		ConditionalDel[rune]{},
		ConditionalIns[rune]{New: 'z'},
	}
	for _, c := range conditionals {
		assert.True(t, c.ConditionalCounterpart() == c, "%v should project to itself", c)
	}
}

func TestNewCopyRejectsUnequalSymbols(t *testing.T) {
	_, err := NewCopy("a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEdit)

	_, err = NewCopy('a', 'b')
	assert.ErrorIs(t, err, ErrMalformedEdit)
}

func TestNewCopyEqualSymbols(t *testing.T) {
	c1, err := NewCopy("a", "a")
	require.NoError(t, err)
	c2, err := NewCopy("a", "a")
	require.NoError(t, err)

	assert.True(t, c1 == c2, "independently built copies of the same symbol should be equal")
	assert.Equal(t, "a", c1.Old())
	assert.Equal(t, "a", c1.New())
}

func TestValueEquality(t *testing.T) {
	assert.True(t, Sub[rune]{Old: 'p', New: 'q'} == Sub[rune]{Old: 'p', New: 'q'})
	assert.True(t, Sub[rune]{Old: 'p', New: 'q'} != Sub[rune]{Old: 'p', New: 'r'})
	assert.True(t, Del[rune]{Old: 'p'} == Del[rune]{Old: 'p'})
	assert.True(t, Ins[rune]{New: 'p'} == Ins[rune]{New: 'p'})
}

func TestEditsAsMapKeys(t *testing.T) {
	seq := []Edit[rune]{
		Start[rune]{},
		ConditionalCopy[rune]{},
		ConditionalSub[rune]{New: 'b'},
		ConditionalCopy[rune]{},
		End[rune]{},
	}

	counts := make(map[Edit[rune]]int)
	for _, e := range seq {
		counts[e]++
	}

	assert.Equal(t, 2, counts[ConditionalCopy[rune]{}])
	assert.Equal(t, 1, counts[ConditionalSub[rune]{New: 'b'}])
	assert.Equal(t, 1, counts[Start[rune]{}])
	assert.Len(t, counts, 4)
}

func TestNoCrossKindEquality(t *testing.T) {
	cp, err := NewCopy('a', 'a')
	require.NoError(t, err)

	edits := []Edit[rune]{
		Start[rune]{},
		End[rune]{},
		ConditionalCopy[rune]{},
		ConditionalDel[rune]{},
		ConditionalSub[rune]{New: 'a'},
		ConditionalIns[rune]{New: 'a'},
		Sub[rune]{Old: 'a', New: 'a'},
		cp,
		Del[rune]{Old: 'a'},
		Ins[rune]{New: 'a'},
	}
	for i, a := range edits {
		for j, b := range edits {
			if i == j {
				continue
			}
			assert.True(t, a != b, "distinct kinds %T and %T should never be equal", a, b)
		}
	}
}

func TestCounterpartsProjectsSequence(t *testing.T) {
	cp, err := NewCopy('x', 'x')
	require.NoError(t, err)

	seq := []Edit[rune]{
		Start[rune]{},
		cp,
		Sub[rune]{Old: 'a', New: 'b'},
		Del[rune]{Old: 'q'},
		Ins[rune]{New: 'z'},
		ConditionalDel[rune]{},
		End[rune]{},
	}

	want := []Edit[rune]{
		Start[rune]{},
		ConditionalCopy[rune]{},
		ConditionalSub[rune]{New: 'b'},
		ConditionalDel[rune]{},
		ConditionalIns[rune]{New: 'z'},
		ConditionalDel[rune]{},
		End[rune]{},
	}

	assert.Equal(t, want, Counterparts(seq))
	assert.Nil(t, Counterparts[rune](nil))
}

func TestStringRendering(t *testing.T) {
	cp, err := NewCopy('x', 'x')
	require.NoError(t, err)

	tests := []struct {
		edit Edit[rune]
		want string
	}{
		{Sub[rune]{Old: 'a', New: 'b'}, "SUB(97->98)"},
		{cp, "COPY(120)"},
		{Del[rune]{Old: 'q'}, "DEL(113)"},
		{Ins[rune]{New: 'z'}, "INS(122)"},
		{ConditionalCopy[rune]{}, "COPY"},
		{ConditionalDel[rune]{}, "DEL"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.edit.String())
	}
}
