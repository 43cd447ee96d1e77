/*
Package emoji implements a heuristic classification of emoji-like
code-points.

Unicode UTS #51 defines emoji properties per code-point, but for tokenizing
user generated Nepali text a much simpler approach does the job: every
code-point from one of three blocks is considered emoji-like. These are the
pictographic planes U+1F300…U+1FAFF, Miscellaneous Symbols U+2600…U+26FF,
and Dingbats U+2700…U+27BF.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emoji

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Class is a heuristic emoji class.
type Class int8

// Emoji classes. Other flags code-points which are not emoji-like.
const (
	Other        Class = iota - 1
	Pictographic       // U+1F300…U+1FAFF
	MiscSymbol         // U+2600…U+26FF
	Dingbat            // U+2700…U+27BF
)

func (c Class) String() string {
	switch c {
	case Pictographic:
		return "Pictographic"
	case MiscSymbol:
		return "MiscSymbol"
	case Dingbat:
		return "Dingbat"
	}
	return "Other"
}

var rangeFromClass = [...]*unicode.RangeTable{
	Pictographic: {
		R32: []unicode.Range32{{Lo: 0x1F300, Hi: 0x1FAFF, Stride: 1}},
	},
	MiscSymbol: {
		R16: []unicode.Range16{{Lo: 0x2600, Hi: 0x26FF, Stride: 1}},
	},
	Dingbat: {
		R16: []unicode.Range16{{Lo: 0x2700, Hi: 0x27BF, Stride: 1}},
	},
}

// EmojiLike is the union of all emoji classes.
var EmojiLike = rangetable.Merge(rangeFromClass[:]...)

// ClassForRune is the top-level client function:
// Get the emoji class for a Unicode code-point.
// Will return Other if the code-point has no emoji class.
func ClassForRune(r rune) Class {
	for class, rt := range rangeFromClass {
		if unicode.Is(rt, r) {
			return Class(class)
		}
	}
	return Other
}

// IsEmojiLike is true if r belongs to any of the emoji classes.
func IsEmojiLike(r rune) bool {
	return unicode.Is(EmojiLike, r)
}
