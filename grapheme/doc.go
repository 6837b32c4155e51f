/*
Package grapheme splits a single word into phonological units.

A unit is what the syllabification rules of a language consider a single
sound: a letter, a consonant digraph like “sh”, a vowel digraph like “ea”,
or a letter together with an attached modifier, e.g. a Russian consonant
followed by a soft sign. Every unit is classified as a vowel, a consonant,
a separator or something else.

Typical Usage

  units := grapheme.Tokenize("shield", engRule)
  for _, u := range units {
      fmt.Printf("%s:%s ", u.Surface, u.Class)  // sh:CONSONANT ie:VOWEL l:CONSONANT d:CONSONANT
  }

Concatenating the surfaces of all units always reproduces the word.
Original casing is preserved in the surfaces, while matching against the
rules of a language is done in lowercase.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grapheme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
