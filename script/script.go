/*
Package script provides code-point classes for Nepali text.

Nepali is written in Devanagari, but real-world text mixes in Latin words,
ASCII digits, emoji and the punctuation of several traditions. The range
tables of this package describe the classes the normalizer and the
tokenizers of this module rely on.

Devanagari occupies the Unicode block U+0900…U+097F. Please note that this
is not the same as the Unicode script property “Deva”: the danda (U+0964)
and double danda (U+0965) belong to the block but have script property
“Common”, whereas the Devanagari Extended block (U+A8E0…) is “Deva” but
plays no role in Nepali orthography.
*/
package script

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Some Devanagari code-points with special roles.
const (
	Candrabindu rune = 0x0901 // ँ
	Anusvara    rune = 0x0902 // ं
	Halant      rune = 0x094D // ्, also called virama
	Danda       rune = 0x0964 // ।
	DoubleDanda rune = 0x0965 // ॥
	ZWNJ        rune = 0x200C // zero width non-joiner
	ZWJ         rune = 0x200D // zero width joiner
)

// DevanagariBlock is the complete Unicode block U+0900…U+097F.
var DevanagariBlock = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0900, Hi: 0x097F, Stride: 1},
	},
}

// DevanagariWord contains the code-points which may form a Devanagari word:
// the Devanagari block without danda and double danda. Devanagari digits are
// word characters, too.
var DevanagariWord = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0900, Hi: 0x0963, Stride: 1},
		{Lo: 0x0966, Hi: 0x097F, Stride: 1},
	},
}

// DevanagariDigit contains the Devanagari digits ० … ९.
var DevanagariDigit = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0966, Hi: 0x096F, Stride: 1},
	},
}

// ASCIIDigit contains the digits 0 … 9.
var ASCIIDigit = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '0', Hi: '9', Stride: 1},
	},
	LatinOffset: 1,
}

// Digit contains ASCII and Devanagari digits.
var Digit = rangetable.Merge(ASCIIDigit, DevanagariDigit)

// LatinLetter contains the ASCII letters A…Z and a…z.
var LatinLetter = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
	},
	LatinOffset: 2,
}

// PunctChars lists the code-points which form single-rune punctuation tokens,
// including the danda, quotes, brackets and dashes.
const PunctChars = "।!?.,;:…—–-(){}[]<>«»\"“”'‘’/\\|@#%^&*_+=~`"

// Punct is the range table for PunctChars.
var Punct = rangetable.New([]rune(PunctChars)...)

// NumberSeparator contains the code-points which may separate digit groups
// within a number, as in dates (२०२६/०१/३१), times (10:30) or
// thousands (1,000.50).
var NumberSeparator = rangetable.New(',', '.', ':', '/', '-')

// SentenceEnder contains the code-points which end a sentence.
var SentenceEnder = rangetable.New(Danda, '?', '!')

// Closer contains closing quotes and brackets which are absorbed by a
// preceding sentence boundary.
var Closer = rangetable.New('"', '\'', '”', '’', ')', ']', '}', '»')

// Joiner contains the zero width joiner and non-joiner.
var Joiner = rangetable.New(ZWNJ, ZWJ)

// IsDevanagari is true if r is in the Devanagari block.
func IsDevanagari(r rune) bool {
	return unicode.Is(DevanagariBlock, r)
}

// IsDevanagariString is true if s is non-empty and all of its code-points
// are in the Devanagari block.
func IsDevanagariString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsDevanagari(r) {
			return false
		}
	}
	return true
}

// IsSpace reports whether r is white space. Tokenizers and sentence
// trimming use this definition.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}
