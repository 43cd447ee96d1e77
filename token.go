package npltk

import (
	"fmt"
	"unicode/utf8"
)

// TokenType classifies a token by script or kind.
type TokenType int8

// Token types. The zero value is not a valid type; it flags tokens which
// have not been classified.
const (
	unclassified TokenType = iota
	WordDev                // Devanagari word
	WordLat                // Latin word (code-mixing)
	Num                    // numbers, dates, times
	Punct                  // punctuation
	Emoji                  // emoji-like characters (heuristic)
	Symbol                 // URLs and other symbols
)

var typeNames = [...]string{
	unclassified: "UNCLASSIFIED",
	WordDev:      "WORD_DEV",
	WordLat:      "WORD_LAT",
	Num:          "NUM",
	Punct:        "PUNCT",
	Emoji:        "EMOJI",
	Symbol:       "SYMBOL",
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(typeNames) {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return typeNames[tt]
}

// MarshalText encodes a token type by its name, e.g. "WORD_DEV".
func (tt TokenType) MarshalText() ([]byte, error) {
	if tt <= unclassified || int(tt) >= len(typeNames) {
		return nil, fmt.Errorf("cannot marshal token type %d", int(tt))
	}
	return []byte(typeNames[tt]), nil
}

// UnmarshalText decodes a token type from its name.
func (tt *TokenType) UnmarshalText(b []byte) error {
	t, ok := TokenTypeFromString(string(b))
	if !ok {
		return fmt.Errorf("unknown token type %q", string(b))
	}
	*tt = t
	return nil
}

// TokenTypeFromString returns the token type for a name like "NUM".
func TokenTypeFromString(name string) (TokenType, bool) {
	for t := WordDev; int(t) < len(typeNames); t++ {
		if typeNames[t] == name {
			return t, true
		}
	}
	return unclassified, false
}

// Token is a classified piece of text. Start and End are code-point offsets
// (End exclusive) into the text the token has been taken from.
type Token struct {
	Text  string    `json:"text" yaml:"text"`
	Start int       `json:"start" yaml:"start"`
	End   int       `json:"end" yaml:"end"`
	Type  TokenType `json:"type" yaml:"type"`
}

// Shift returns a copy of the token with its span moved by offset
// code-points.
func (t Token) Shift(offset int) Token {
	t.Start += offset
	t.End += offset
	return t
}

// Len returns the length of the token in code-points.
func (t Token) Len() int {
	return t.End - t.Start
}

// String returns a debug representation, e.g. WORD_DEV("नेपाल")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Substring returns the code-points [start:end) of s.
// Offsets out of range are clipped.
func Substring(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	from, i := -1, 0
	for pos := range s {
		if i == start {
			from = pos
		}
		if i == end {
			return s[from:pos]
		}
		i++
	}
	if from < 0 {
		return ""
	}
	return s[from:]
}

// RuneLen returns the number of code-points of s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
