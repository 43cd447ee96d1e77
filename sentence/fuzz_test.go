package sentence

import (
	"testing"
	"unicode/utf8"
)

func FuzzSplit(f *testing.F) {
	f.Add("घरमा नेपालबाट गएँ। अनि school गएँ!")
	f.Add("")
	f.Add("?!।")
	f.Add(` "।" `)

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		verifySpans(t, s, Split(s))
	})
}
