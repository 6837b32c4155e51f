/*
Package syllable finds syllable boundaries within single words.

Syllabification of a word is done in three steps:

(1) The word is split into phonological units (see package grapheme).

(2) Syllable nuclei are located. Every vowel unit is a nucleus, with two
exceptions: a final semivowel following a consonant does not form a
syllable of its own, and in some languages a syllabic consonant, buffered
by other consonants, acts as a nucleus. Words without any vowel may still
be split at syllabic consonants.

(3) Between each pair of adjacent nuclei a boundary is placed, depending on
the consonants in between. A single consonant starts the next syllable,
two consonants are split unless they form a valid onset, and for longer
clusters only the last one or two consonants start the next syllable.

Typical Usage

  s := syllable.NewSyllabifier(engRule, "-")
  fmt.Println(s.Word("problem"))   // pro-blem

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syllable

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
