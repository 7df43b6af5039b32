package align

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Adamits/maxwell/pkg/actions"
)

// ErrScriptMismatch indicates that a script does not fit the source it is
// being replayed against: a recorded source symbol disagrees with the
// actual one, or the script consumes the wrong number of source symbols.
var ErrScriptMismatch = errors.New("edit script does not match source")

// Apply replays a generative edit script against source and returns the
// reconstructed target. Copy, Sub, and Del each consume one source symbol
// and check it against the symbol the script recorded; Ins consumes
// nothing. The script must consume the source exactly.
func Apply(source string, script []actions.GenerativeEdit[rune]) (string, error) {
	src := []rune(source)
	var out strings.Builder
	pos := 0

	consume := func(old rune) error {
		if pos >= len(src) {
			return fmt.Errorf("%w: script reads past end of source (len %d)", ErrScriptMismatch, len(src))
		}
		if src[pos] != old {
			return fmt.Errorf("%w: source[%d]=%q, script recorded %q", ErrScriptMismatch, pos, src[pos], old)
		}
		pos++
		return nil
	}

	for _, e := range script {
		switch e := e.(type) {
		case actions.Copy[rune]:
			if err := consume(e.Old()); err != nil {
				return "", err
			}
			out.WriteRune(e.New())
		case actions.Sub[rune]:
			if err := consume(e.Old); err != nil {
				return "", err
			}
			out.WriteRune(e.New)
		case actions.Del[rune]:
			if err := consume(e.Old); err != nil {
				return "", err
			}
		case actions.Ins[rune]:
			out.WriteRune(e.New)
		}
	}
	if pos != len(src) {
		return "", fmt.Errorf("%w: script consumed %d of %d source symbols", ErrScriptMismatch, pos, len(src))
	}
	return out.String(), nil
}
