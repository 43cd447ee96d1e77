/*
Package normalize cleans up Nepali text before tokenization.

Real-world Devanagari text is full of irregularities: non-breaking and zero
width spaces, stray joiners, doubled diacritics, and postpositions glued to
the word they belong to. A Normalizer applies a fixed sequence of rewrite
rules to fix these, and logs every rule which has changed the text.

	n := normalize.Default()
	res := n.Normalize("घरमा   नेपाल\u200bबाट  गएँ")
	fmt.Println(res.Text) // घर मा नेपाल बाट गएँ
	for _, t := range res.Transforms {
		fmt.Println(t.Rule, t.Meta)
	}

Rules run in this order, every one of them switched on or off by Config:

	unicode_nfc            NFC normalization
	whitespace_normalize   canonical spaces, collapsed blanks, trimming
	remove_invisible_chars control characters other than \n and \t
	zwj_zwnj_cleanup       zero width (non-)joiners
	halant_cleanup         space after halant, doubled halants
	diacritic_dedupe       doubled anusvara and candrabindu
	postposition_split     "घरमा" → "घर मा"

Every rule by itself is idempotent. The pipeline as a whole is idempotent as
well, with one exception: a word carrying two stacked postpositions
("घरकोमा") is split once per run.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package normalize

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Transform records a single rule application which has changed the text.
type Transform struct {
	Rule   string `json:"rule" yaml:"rule"`
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
	Meta   Meta   `json:"meta" yaml:"meta"`
}

// Result is the outcome of normalizing a text.
type Result struct {
	Text       string      `json:"text" yaml:"text"`
	Transforms []Transform `json:"transforms" yaml:"transforms"`
}

// Applied returns true if rule has changed the text.
func (res Result) Applied(rule string) bool {
	for _, t := range res.Transforms {
		if t.Rule == rule {
			return true
		}
	}
	return false
}

// Normalizer is a pipeline of rules. It is immutable and may be shared
// between goroutines.
type Normalizer struct {
	rules []Rule
}

// New creates a Normalizer for the rules enabled by cfg.
func New(cfg Config) *Normalizer {
	n := &Normalizer{}
	for _, entry := range cfg.catalogue() {
		if entry.enabled {
			n.rules = append(n.rules, entry.rule)
		}
	}
	return n
}

// Default creates a Normalizer with all rules enabled.
func Default() *Normalizer {
	return New(DefaultConfig())
}

// Rules returns the names of the enabled rules, in the order they are
// applied.
func (n *Normalizer) Rules() []string {
	names := make([]string, len(n.rules))
	for i, r := range n.rules {
		names[i] = r.Name()
	}
	return names
}

// Normalize runs text through all enabled rules. Empty text is valid input.
func (n *Normalizer) Normalize(text string) Result {
	res := Result{Text: text}
	for _, r := range n.rules {
		after, meta := r.Apply(res.Text)
		if after == res.Text {
			continue
		}
		CT().P("rule", r.Name()).Debugf("%q → %q", res.Text, after)
		res.Transforms = append(res.Transforms, Transform{
			Rule:   r.Name(),
			Before: res.Text,
			After:  after,
			Meta:   meta,
		})
		res.Text = after
	}
	return res
}
