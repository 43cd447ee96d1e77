/*
Package npltk is about normalizing and tokenizing Nepali text.

Description

Nepali is written in Devanagari. Real-world Nepali text, as it is found on
the web, in newspapers and in user generated content, is rarely clean:
it contains a zoo of space characters, invisible joiners left over from
input methods, duplicated nasalization marks, and postpositions glued to
the nouns they govern. Before any downstream processing can take place,
such text has to be brought into a canonical form and then broken up into
sentences and words.

Contents

Package npltk is split into a normalization part and a tokenization part.

Sub-package normalize holds a closed catalogue of text-rewrite rules and a
pipeline to apply them in a fixed order. Each rule application which
changes the text is recorded as a transform, giving clients an audit trail
of what happened to their input.

Sub-package sentence finds sentence boundaries (danda, question mark,
exclamation mark), sub-package word classifies runs of code-points into
typed tokens, and sub-package tokenizer ties both together, translating
sentence-local token spans into document-global ones.

Base package npltk provides the token model and the means to implement
word classification: small recognizers, driven by state functions, which
are fed code-points one at a time.

Recognizers

Every token class is described by a short regular expression, i.e. a finite
state automaton. Every step within an automaton is performed by executing a
function. This function recognizes a single code-point and returns another
function. The returned function represents the expectation for the next
code-point. Matching continues until the automaton either stops or runs out
of input. Along the way a recognizer remembers the longest prefix it has
accepted so far, which gives regular-expression style greedy matching with
backtracking to the last accepting state.

Recognizers are short-lived and therefore pooled. A rune publisher
distributes code-points to all recognizers which are still active.

Offsets

All offsets in this module count code-points (runes), not bytes. For a
token t taken from text s the following holds:

   string([]rune(s)[t.Start:t.End]) == t.Text

BSD License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package npltk

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
