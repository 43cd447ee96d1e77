/*
Package sentence splits Nepali text into sentences.

Nepali sentences end in a danda (।), a question mark or an exclamation
mark. Closing quotes and brackets directly following a sentence end are
considered part of the sentence:

	राम भन्छ, "म जान्छु।" अनि ऊ गयो।

is split into `राम भन्छ, "म जान्छु।"` and `अनि ऊ गयो।`.

Sentences are reported as spans over the original text. Offsets count
code-points. White space around a sentence is not part of its span,
therefore spans need not be contiguous.
*/
package sentence

import (
	"unicode"

	"github.com/npillmayer/npltk/script"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/rangetable"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Span is a sentence within a text, with Text == text[Start:End]
// (code-point offsets, End exclusive).
type Span struct {
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Splitter finds sentence boundaries. A Splitter is immutable and safe for
// concurrent use.
type Splitter struct {
	enders *unicode.RangeTable
}

var defaultSplitter = &Splitter{enders: script.SentenceEnder}

// NewSplitter creates a sentence splitter for a set of sentence-ending
// code-points. If no enders are given, danda, '?' and '!' are used.
func NewSplitter(enders ...rune) *Splitter {
	if len(enders) == 0 {
		return defaultSplitter
	}
	return &Splitter{enders: rangetable.New(enders...)}
}

// Split splits text into sentences, using the default sentence enders.
func Split(text string) []Span {
	return defaultSplitter.Split(text)
}

// Split splits text into sentences. It scans left to right; a sentence ends
// at any of the splitter's enders, plus any closing quotes or brackets
// immediately following it. Text after the last sentence end is reported as
// a final sentence. Empty sentences are dropped.
func (sp *Splitter) Split(text string) []Span {
	runes := []rune(text)
	n := len(runes)
	spans := make([]Span, 0, n/40+1)
	start := 0
	for i := 0; i < n; i++ {
		if !unicode.Is(sp.enders, runes[i]) {
			continue
		}
		end := i + 1
		for end < n && unicode.Is(script.Closer, runes[end]) {
			end++
		}
		if span, ok := trimmed(runes, start, end); ok {
			CT().Debugf("sentence boundary at %d: %q", span.End, span.Text)
			spans = append(spans, span)
		}
		start = end
		i = end - 1
	}
	if start < n {
		if span, ok := trimmed(runes, start, n); ok {
			spans = append(spans, span)
		}
	}
	return spans
}

// trimmed creates a span for runes[from:to] without leading and trailing
// white space. It returns false if nothing is left.
func trimmed(runes []rune, from, to int) (Span, bool) {
	for from < to && script.IsSpace(runes[from]) {
		from++
	}
	for to > from && script.IsSpace(runes[to-1]) {
		to--
	}
	if from >= to {
		return Span{}, false
	}
	return Span{Text: string(runes[from:to]), Start: from, End: to}, true
}
