package align

import (
	"strings"

	"github.com/Adamits/maxwell/pkg/actions"
)

// ANSI color codes
const (
	red   = "\033[31m"
	green = "\033[32m"
	reset = "\033[0m"
)

// Visualize renders a script as colored text: copied symbols plain,
// deleted symbols red, inserted symbols green. A substitution shows the
// old symbol in red followed by the new symbol in green.
func Visualize(script []actions.GenerativeEdit[rune]) string {
	var b strings.Builder
	for _, e := range script {
		switch e := e.(type) {
		case actions.Copy[rune]:
			b.WriteRune(e.New())
		case actions.Sub[rune]:
			b.WriteString(red)
			b.WriteRune(e.Old)
			b.WriteString(reset)
			b.WriteString(green)
			b.WriteRune(e.New)
			b.WriteString(reset)
		case actions.Del[rune]:
			b.WriteString(red)
			b.WriteRune(e.Old)
			b.WriteString(reset)
		case actions.Ins[rune]:
			b.WriteString(green)
			b.WriteRune(e.New)
			b.WriteString(reset)
		}
	}
	return b.String()
}
