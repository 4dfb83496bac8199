package quadgraph

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// minusReplacer maps typographic signs that keyboards and clipboards
// produce onto their ASCII forms.
var minusReplacer = strings.NewReplacer(
	"−", "-", // minus sign
	"–", "-", // en dash
	"ˆ", "^", // modifier circumflex
)

// NormalizeFormula prepares raw user text for parsing. Full-width and
// half-width forms are folded to their canonical width (so "１ｘ＾２"
// reads as "1x^2"), typographic minus signs become '-', and all white
// space is removed.
func NormalizeFormula(s string) string {
	s = width.Fold.String(s)
	s = minusReplacer.Replace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
