/*
Package tokenizer combines sentence splitting and word tokenization.

A Tokenizer splits a text into sentences, tokenizes every sentence by itself
and reports the tokens with offsets into the complete text:

	tok := tokenizer.New(tokenizer.DefaultConfig())
	for _, s := range tok.TokenizeSentences("घरमा नेपालबाट गएँ। अनि school गएँ!") {
		fmt.Printf("%d:%d %s\n", s.Start, s.End, s.Sentence)
		for _, t := range s.Tokens {
			fmt.Printf("    %v\n", t)
		}
	}

Input text is expected to be normalized already, see package normalize.
*/
package tokenizer

import (
	"github.com/npillmayer/npltk"
	"github.com/npillmayer/npltk/sentence"
	"github.com/npillmayer/npltk/word"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Config configures a Tokenizer.
type Config struct {
	SplitIntoSentences bool `mapstructure:"split_into_sentences" json:"split_into_sentences" yaml:"split_into_sentences"`
	KeepPunct          bool `mapstructure:"keep_punct" json:"keep_punct" yaml:"keep_punct"`
}

// DefaultConfig splits into sentences and keeps punctuation.
func DefaultConfig() Config {
	return Config{SplitIntoSentences: true, KeepPunct: true}
}

// Sentence is a sentence together with its tokens. Start, End and the
// token spans are code-point offsets into the complete text.
type Sentence struct {
	Sentence string        `json:"sentence" yaml:"sentence"`
	Start    int           `json:"start" yaml:"start"`
	End      int           `json:"end" yaml:"end"`
	Tokens   []npltk.Token `json:"tokens" yaml:"tokens"`
}

// Tokenizer is immutable and safe for concurrent use.
type Tokenizer struct {
	config   Config
	splitter *sentence.Splitter
}

// New creates a tokenizer.
func New(cfg Config) *Tokenizer {
	return &Tokenizer{config: cfg, splitter: sentence.NewSplitter()}
}

// Config returns the configuration of t.
func (t *Tokenizer) Config() Config {
	return t.config
}

// Tokenize tokenizes the complete text, without grouping tokens into
// sentences.
func (t *Tokenizer) Tokenize(text string) []npltk.Token {
	return word.Tokenize(text, t.config.KeepPunct)
}

// TokenizeSentences splits text into sentences and tokenizes each of them.
// If sentence splitting is switched off, the result is a single sentence
// covering the complete text, even if text is empty.
func (t *Tokenizer) TokenizeSentences(text string) []Sentence {
	if !t.config.SplitIntoSentences {
		return []Sentence{{
			Sentence: text,
			Start:    0,
			End:      npltk.RuneLen(text),
			Tokens:   word.Tokenize(text, t.config.KeepPunct),
		}}
	}
	spans := t.splitter.Split(text)
	sentences := make([]Sentence, 0, len(spans))
	for _, span := range spans {
		local := word.Tokenize(span.Text, t.config.KeepPunct)
		tokens := make([]npltk.Token, len(local))
		for i, tok := range local {
			tokens[i] = tok.Shift(span.Start)
		}
		CT().Debugf("sentence [%d:%d] has %d tokens", span.Start, span.End, len(tokens))
		sentences = append(sentences, Sentence{
			Sentence: span.Text,
			Start:    span.Start,
			End:      span.End,
			Tokens:   tokens,
		})
	}
	return sentences
}
