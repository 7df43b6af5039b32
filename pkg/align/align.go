// Package align is the reference oracle for the edit-action algebra: it
// derives, replays, and renders generative edit scripts over rune symbols.
// Alignment is character-level and built on diffmatchpatch; the contract is
// that replaying the derived script against the source (see Apply)
// reconstructs the target exactly.
package align

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Adamits/maxwell/pkg/actions"
)

// Align derives a generative edit script that transforms source into
// target. Equal diff runs become Copy edits, a deletion run paired with
// the insertion run that follows it becomes Sub edits symbol by symbol,
// and unpaired deleted or inserted symbols become Del and Ins edits.
func Align(source, target string) ([]actions.GenerativeEdit[rune], error) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(source, target, false)

	var script []actions.GenerativeEdit[rune]
	for i := 0; i < len(diffs); i++ {
		switch diffs[i].Type {
		case diffmatchpatch.DiffEqual:
			for _, r := range diffs[i].Text {
				cp, err := actions.NewCopy(r, r)
				if err != nil {
					return nil, err
				}
				script = append(script, cp)
			}
		case diffmatchpatch.DiffDelete:
			removed := []rune(diffs[i].Text)
			var added []rune
			// A deletion immediately followed by an insertion is one
			// replacement region: pair the runs into substitutions.
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				added = []rune(diffs[i+1].Text)
				i++
			}
			n := min(len(removed), len(added))
			for k := 0; k < n; k++ {
				if removed[k] == added[k] {
					cp, err := actions.NewCopy(removed[k], added[k])
					if err != nil {
						return nil, err
					}
					script = append(script, cp)
					continue
				}
				script = append(script, actions.Sub[rune]{Old: removed[k], New: added[k]})
			}
			for _, r := range removed[n:] {
				script = append(script, actions.Del[rune]{Old: r})
			}
			for _, r := range added[n:] {
				script = append(script, actions.Ins[rune]{New: r})
			}
		case diffmatchpatch.DiffInsert:
			for _, r := range diffs[i].Text {
				script = append(script, actions.Ins[rune]{New: r})
			}
		}
	}
	return script, nil
}

// Frame bounds a script with the Start and End sentinels, producing the
// full sequence form consumed by sequence models.
func Frame[S comparable](script []actions.GenerativeEdit[S]) []actions.Edit[S] {
	framed := make([]actions.Edit[S], 0, len(script)+2)
	framed = append(framed, actions.Start[S]{})
	for _, e := range script {
		framed = append(framed, e)
	}
	return append(framed, actions.End[S]{})
}
