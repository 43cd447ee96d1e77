/*
Package word classifies Nepali text into typed word tokens.

Typical Usage

	tokens := word.Tokenize("मिति २०२६/०१/३१ हो 🙂", true)
	for _, t := range tokens {
		fmt.Println(t)
	}

How it works

The tokenizer performs a single left-to-right scan. At each position it
starts one recognizer for every token class and feeds the following
code-points to all of them in parallel, until every recognizer is done.
Classes are ordered by precedence; the first class which has accepted
any input wins, with the longest prefix it has accepted. This is what a
regular expression engine does for an alternation of the class patterns:

	URL        (http://|https://|www\.)\S+                 → SYMBOL
	number     D+([,.:/-]D+)*      with D = [0-9०-९]       → NUM
	Devanagari [U+0900–U+0963 U+0966–U+097F]+             → WORD_DEV
	Latin      [A-Za-z]+('[A-Za-z]+)?                      → WORD_LAT
	punct      a single rune of script.PunctChars          → PUNCT
	space      \s+                                         → (dropped)
	other      any single rune                             → EMOJI | SYMBOL

Whitespace never produces a token, therefore token spans need not be
contiguous. Spans count code-points.
*/
package word

import (
	"github.com/npillmayer/npltk"
	"github.com/npillmayer/npltk/emoji"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Recognizer kinds which do not directly correspond to a token type.
const (
	kindSpace = int(npltk.Symbol) + 1 + iota
	kindOther
)

type rule struct {
	kind  int
	start npltk.NfaStateFn
}

// rules in order of precedence
var rules = [...]rule{
	{int(npltk.Symbol), rule_URL},
	{int(npltk.Num), rule_Number},
	{int(npltk.WordDev), rule_Devanagari},
	{int(npltk.WordLat), rule_Latin},
	{int(npltk.Punct), rule_Punct},
	{kindSpace, rule_Space},
	{kindOther, rule_Other},
}

// Tokenize splits text into classified tokens. Token spans are code-point
// offsets into text. If keepPunct is false, punctuation tokens are
// suppressed.
func Tokenize(text string, keepPunct bool) []npltk.Token {
	runes := []rune(text)
	if len(runes) == 0 {
		return []npltk.Token{}
	}
	tokens := make([]npltk.Token, 0, len(runes)/4+1)
	rpub := npltk.NewRunePublisher()
	for pos := 0; pos < len(runes); {
		kind, length := longestMatch(rpub, runes[pos:])
		tok := npltk.Token{
			Text:  string(runes[pos : pos+length]),
			Start: pos,
			End:   pos + length,
		}
		pos += length
		switch kind {
		case kindSpace:
			continue
		case kindOther:
			if length == 1 && emoji.IsEmojiLike(runes[tok.Start]) {
				tok.Type = npltk.Emoji
			} else {
				tok.Type = npltk.Symbol
			}
		case int(npltk.Punct):
			if !keepPunct {
				continue
			}
			tok.Type = npltk.Punct
		default:
			tok.Type = npltk.TokenType(kind)
		}
		CT().Debugf("word token %v", tok)
		tokens = append(tokens, tok)
	}
	return tokens
}

// longestMatch starts all recognizers at the beginning of input and feeds
// them until every one of them is done. It returns the kind of the winning
// recognizer and the length of its match, which is at least 1.
func longestMatch(rpub *npltk.RunePublisher, input []rune) (kind int, length int) {
	for _, rl := range rules {
		rpub.SubscribeMe(npltk.NewPooledRecognizer(rl.kind, rl.start))
	}
	for _, r := range input {
		if rpub.PublishRuneEvent(r) == 0 {
			break
		}
	}
	rpub.PublishEndOfText()
	kind, length = kindOther, 1
	if winner := rpub.Winner(); winner != nil {
		kind, length = winner.Kind, winner.Accepted()
	}
	rpub.UnsubscribeAll()
	return kind, length
}
