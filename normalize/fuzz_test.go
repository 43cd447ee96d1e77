package normalize

import (
	"testing"
	"unicode/utf8"
)

// FuzzRuleIdempotence checks every rule except postposition splitting, which
// splits stacked postpositions one per run.
func FuzzRuleIdempotence(f *testing.F) {
	f.Add("घरमा   नेपाल\u200bबाट  गएँ")
	f.Add("क्  ्ष\u200d संंसार\x00\n\n\n\n")
	f.Add("\u00a0\t é ")
	f.Add("")

	rules := []Rule{
		UnicodeNFC{}, WhitespaceNormalize{}, RemoveInvisibleChars{},
		JoinerCleanup{}, HalantCleanup{}, DiacriticDedupe{},
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		for _, r := range rules {
			once, _ := r.Apply(s)
			twice, meta := r.Apply(once)
			if twice != once {
				t.Errorf("%s not idempotent on %q: %q → %q", r.Name(), s, once, twice)
			}
			if meta["changed"] == true {
				t.Errorf("%s reports change on second run", r.Name())
			}
		}
	})
}
