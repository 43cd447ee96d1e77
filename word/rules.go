package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/npltk"
	"github.com/npillmayer/npltk/script"
)

// --- URL ---------------------------------------------------------------

// (http://|https://|www\.)\S+
func rule_URL(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	switch r {
	case 'h':
		return npltk.DoConsume(rec, expectLiteral("ttp", urlScheme))
	case 'w':
		return npltk.DoConsume(rec, expectLiteral("ww.", urlBody))
	}
	return npltk.DoAbort(rec)
}

func urlScheme(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	switch r {
	case 's':
		return npltk.DoConsume(rec, expectLiteral("://", urlBody))
	case ':':
		return npltk.DoConsume(rec, expectLiteral("//", urlBody))
	}
	return npltk.DoAbort(rec)
}

func urlBody(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if script.IsSpace(r) {
		return npltk.DoAbort(rec)
	}
	return npltk.DoAccept(rec, urlBody)
}

// expectLiteral matches the runes of lit, one by one, then continues
// with next.
func expectLiteral(lit string, next npltk.NfaStateFn) npltk.NfaStateFn {
	if lit == "" {
		return next
	}
	first, size := utf8.DecodeRuneInString(lit)
	return func(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
		if r != first {
			return npltk.DoAbort(rec)
		}
		return npltk.DoConsume(rec, expectLiteral(lit[size:], next))
	}
}

// --- Numbers -----------------------------------------------------------

// D+([,.:/-]D+)*
func rule_Number(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if unicode.Is(script.Digit, r) {
		return npltk.DoAccept(rec, numberDigits)
	}
	return npltk.DoAbort(rec)
}

func numberDigits(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if unicode.Is(script.Digit, r) {
		return npltk.DoAccept(rec, numberDigits)
	}
	if unicode.Is(script.NumberSeparator, r) {
		return npltk.DoConsume(rec, rule_Number) // separator must be followed by a digit
	}
	return npltk.DoAbort(rec)
}

// --- Words -------------------------------------------------------------

func rule_Devanagari(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if unicode.Is(script.DevanagariWord, r) {
		return npltk.DoAccept(rec, rule_Devanagari)
	}
	return npltk.DoAbort(rec)
}

// [A-Za-z]+('[A-Za-z]+)?
func rule_Latin(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if unicode.Is(script.LatinLetter, r) {
		return npltk.DoAccept(rec, latinLetters)
	}
	return npltk.DoAbort(rec)
}

func latinLetters(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if unicode.Is(script.LatinLetter, r) {
		return npltk.DoAccept(rec, latinLetters)
	}
	if r == '\'' {
		return npltk.DoConsume(rec, latinContraction)
	}
	return npltk.DoAbort(rec)
}

// at most one apostrophe per word
func latinContraction(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if unicode.Is(script.LatinLetter, r) {
		return npltk.DoAccept(rec, latinContraction)
	}
	return npltk.DoAbort(rec)
}

// --- Punctuation, space and others -------------------------------------

func rule_Punct(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if unicode.Is(script.Punct, r) {
		return npltk.DoAccept(rec, nil)
	}
	return npltk.DoAbort(rec)
}

func rule_Space(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	if script.IsSpace(r) {
		return npltk.DoAccept(rec, rule_Space)
	}
	return npltk.DoAbort(rec)
}

func rule_Other(rec *npltk.Recognizer, r rune) npltk.NfaStateFn {
	return npltk.DoAccept(rec, nil)
}
