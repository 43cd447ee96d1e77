package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/npltk/script"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Meta carries information about a rule application, e.g. the number of
// code-points removed.
type Meta map[string]interface{}

// Rule is a named text rewrite. Rules are stateless and idempotent: applying
// a rule to its own output does not change the text any further.
//
// The set of rules is closed; clients select rules by Config.
type Rule interface {
	Name() string
	Apply(text string) (string, Meta)
	rule()
}

// Rule names, as reported in transforms.
const (
	NameUnicodeNFC        = "unicode_nfc"
	NameWhitespace        = "whitespace_normalize"
	NameInvisibleChars    = "remove_invisible_chars"
	NameJoinerCleanup     = "zwj_zwnj_cleanup"
	NameHalantCleanup     = "halant_cleanup"
	NameDiacriticDedupe   = "diacritic_dedupe"
	NamePostpositionSplit = "postposition_split"
)

// --- Unicode NFC ------------------------------------------------------------

// UnicodeNFC rewrites text to Unicode Normalization Form C.
type UnicodeNFC struct{}

func (UnicodeNFC) rule() {}

// Name is part of interface Rule.
func (UnicodeNFC) Name() string { return NameUnicodeNFC }

// Apply is part of interface Rule.
func (UnicodeNFC) Apply(text string) (string, Meta) {
	return norm.NFC.String(text), Meta{}
}

// --- White space ------------------------------------------------------------

// WhitespaceNormalize canonicalizes space characters. Non-breaking, narrow
// non-breaking and thin spaces become ASCII spaces, zero width spaces and
// byte order marks are removed. Runs of spaces and tabs collapse to a single
// space, and more than two consecutive newlines collapse to two. Finally,
// white space at the start and end of the text is trimmed.
type WhitespaceNormalize struct{}

func (WhitespaceNormalize) rule() {}

// Name is part of interface Rule.
func (WhitespaceNormalize) Name() string { return NameWhitespace }

var zeroWidth = runes.In(&unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200B, Hi: 0x200B, Stride: 1}, // zero width space
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1}, // byte order mark
	},
})

func toASCIISpace(r rune) rune {
	switch r {
	case '\u00a0', '\u202f', '\u2009':
		return ' '
	}
	return r
}

// Apply is part of interface Rule.
func (WhitespaceNormalize) Apply(text string) (string, Meta) {
	t := transform.Chain(runes.Remove(zeroWidth), runes.Map(toASCIISpace))
	out, _, err := transform.String(t, text)
	if err != nil {
		CT().Errorf("white space mapping failed: %v", err)
		out = text
	}
	out = collapseBlanks(out)
	out = collapseNewlines(out)
	out = strings.TrimFunc(out, unicode.IsSpace)
	return out, Meta{"changed": out != text}
}

// collapseBlanks replaces runs of spaces and tabs by a single space.
func collapseBlanks(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !inRun {
				sb.WriteByte(' ')
			}
			inRun = true
			continue
		}
		inRun = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// collapseNewlines replaces runs of 3 or more newlines by 2 newlines.
func collapseNewlines(s string) string {
	if !strings.Contains(s, "\n\n\n") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	run := 0
	for _, r := range s {
		if r == '\n' {
			run++
			if run > 2 {
				continue
			}
		} else {
			run = 0
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// --- Invisible characters ---------------------------------------------------

// RemoveInvisibleChars removes control characters (general category Cc),
// except for newline and tab.
type RemoveInvisibleChars struct{}

func (RemoveInvisibleChars) rule() {}

// Name is part of interface Rule.
func (RemoveInvisibleChars) Name() string { return NameInvisibleChars }

func isInvisible(r rune) bool {
	return r != '\n' && r != '\t' && unicode.Is(unicode.Cc, r)
}

// Apply is part of interface Rule.
func (RemoveInvisibleChars) Apply(text string) (string, Meta) {
	removed := 0
	for _, r := range text {
		if isInvisible(r) {
			removed++
		}
	}
	if removed == 0 {
		return text, Meta{"removed": 0, "changed": false}
	}
	out, _, err := transform.String(runes.Remove(runes.Predicate(isInvisible)), text)
	if err != nil {
		CT().Errorf("removing invisible characters failed: %v", err)
		return text, Meta{"removed": 0, "changed": false}
	}
	return out, Meta{"removed": removed, "changed": out != text}
}

// --- Joiners ----------------------------------------------------------------

// JoinerCleanup removes every zero width joiner (U+200D) and zero width
// non-joiner (U+200C).
type JoinerCleanup struct{}

func (JoinerCleanup) rule() {}

// Name is part of interface Rule.
func (JoinerCleanup) Name() string { return NameJoinerCleanup }

// Apply is part of interface Rule.
func (JoinerCleanup) Apply(text string) (string, Meta) {
	out, _, err := transform.String(runes.Remove(runes.In(script.Joiner)), text)
	if err != nil {
		CT().Errorf("removing joiners failed: %v", err)
		out = text
	}
	return out, Meta{"changed": out != text}
}

// --- Halant -----------------------------------------------------------------

// HalantCleanup removes white space following a halant and collapses
// repeated halants to a single one.
type HalantCleanup struct{}

func (HalantCleanup) rule() {}

// Name is part of interface Rule.
func (HalantCleanup) Name() string { return NameHalantCleanup }

// Apply is part of interface Rule.
func (HalantCleanup) Apply(text string) (string, Meta) {
	if !strings.ContainsRune(text, script.Halant) {
		return text, Meta{"changed": false}
	}
	out := dropAfterHalant(text, unicode.IsSpace)
	out = dropAfterHalant(out, func(r rune) bool { return r == script.Halant })
	return out, Meta{"changed": out != text}
}

// dropAfterHalant removes runs of runes satisfying pred which directly follow
// a halant.
func dropAfterHalant(s string, pred func(rune) bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	afterHalant := false
	for _, r := range s {
		if afterHalant && pred(r) {
			continue
		}
		afterHalant = r == script.Halant
		sb.WriteRune(r)
	}
	return sb.String()
}

// --- Diacritics -------------------------------------------------------------

// DiacriticDedupe collapses runs of anusvara (ं) and runs of candrabindu (ँ)
// to a single mark each.
type DiacriticDedupe struct{}

func (DiacriticDedupe) rule() {}

// Name is part of interface Rule.
func (DiacriticDedupe) Name() string { return NameDiacriticDedupe }

// Apply is part of interface Rule.
func (DiacriticDedupe) Apply(text string) (string, Meta) {
	var sb strings.Builder
	sb.Grow(len(text))
	prev := rune(-1)
	for _, r := range text {
		if r == prev && (r == script.Anusvara || r == script.Candrabindu) {
			continue
		}
		prev = r
		sb.WriteRune(r)
	}
	out := sb.String()
	return out, Meta{"changed": out != text}
}

// --- Postpositions ----------------------------------------------------------

// DefaultMinRootLen is the minimum length (in code-points) of a root left
// over after splitting off a postposition.
const DefaultMinRootLen = 2

// minSplitLen is the minimum length of a word to be considered for
// postposition splitting.
const minSplitLen = 3

// postpositions are Nepali postpositions and case markers, longest first.
var postpositions = sortedLongestFirst(
	"देखि", "सम्म", "बाट", "लाई", "सँग",
	"को", "का", "की",
	"मा", "ले", "त", "नि", "नै",
	"हरू",
)

// Postpositions returns the suffixes PostpositionSplit tries, in the order
// they are tried.
func Postpositions() []string {
	p := make([]string, len(postpositions))
	copy(p, postpositions)
	return p
}

func sortedLongestFirst(suffixes ...string) []string {
	set := treeset.NewWith(longerFirst)
	for _, s := range suffixes {
		set.Add(s)
	}
	sorted := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		sorted = append(sorted, v.(string))
	}
	return sorted
}

// longerFirst orders strings by descending code-point count, then
// lexicographically.
func longerFirst(a, b interface{}) int {
	s1, s2 := a.(string), b.(string)
	l1, l2 := utf8.RuneCountInString(s1), utf8.RuneCountInString(s2)
	if l1 != l2 {
		return l2 - l1
	}
	return utils.StringComparator(s1, s2)
}

// PostpositionSplit separates a postposition from the word it is glued to,
// e.g. "घरमा" → "घर मा". Words are separated by ASCII spaces. Only words made
// up entirely of Devanagari and at least 3 code-points long are candidates.
// Suffixes are tried longest first; the first one leaving a root of at least
// MinRootLen code-points wins. Every word is split at most once.
type PostpositionSplit struct {
	MinRootLen int // values < 1 select DefaultMinRootLen
}

func (PostpositionSplit) rule() {}

// Name is part of interface Rule.
func (PostpositionSplit) Name() string { return NamePostpositionSplit }

// Apply is part of interface Rule.
func (ps PostpositionSplit) Apply(text string) (string, Meta) {
	words := strings.Split(text, " ")
	out := make([]string, 0, len(words)+len(words)/2)
	splits := 0
	for _, w := range words {
		if root, suffix, ok := ps.split(w); ok {
			out = append(out, root, suffix)
			splits++
			continue
		}
		out = append(out, w)
	}
	after := strings.Join(out, " ")
	return after, Meta{"splits": splits, "changed": after != text}
}

func (ps PostpositionSplit) split(w string) (root, suffix string, ok bool) {
	minRoot := ps.MinRootLen
	if minRoot < 1 {
		minRoot = DefaultMinRootLen
	}
	n := utf8.RuneCountInString(w)
	if n < minSplitLen || !script.IsDevanagariString(w) {
		return "", "", false
	}
	for _, suf := range postpositions {
		if !strings.HasSuffix(w, suf) {
			continue
		}
		sl := utf8.RuneCountInString(suf)
		if n <= sl+minRoot-1 {
			continue
		}
		root = w[:len(w)-len(suf)]
		if utf8.RuneCountInString(root) >= minRoot {
			return root, suf, true
		}
	}
	return "", "", false
}
