/*
Package ruleconf reads language rules from YAML documents.

A rule document contains a list of rules, one per language:

  rules:
    - lang: eng
      vowels: aeiouy
      consonants: bcdfghjklmnpqrstvwxz
      clusters_keep_next: [bl, br, pr, tr]
      split_hiatus: false

Character classes (vowels, consonants, sonorants, glides, syllabic_consonants,
modifiers_attach_left, modifiers_attach_right, modifiers_separators and
final_semivowels) are given as strings of characters. Multi-character rules
(clusters_keep_next, clusters_only_after_long, dont_split_digraphs,
digraph_vowels, final_sequences_keep, suffixes_break_vre and
suffixes_keep_vre) are given as lists of strings. Unknown keys are an error.
All strings are normalized to NFC.

The order of the rules in a document is significant: when two languages
match a text equally well, the one listed first wins.

A default rule document is embedded into the package, see Default.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ruleconf

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
