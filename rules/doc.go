/*
Package rules holds the phonological rule records driving syllabification
and language detection.

A LanguageRule describes a single language: its vowel and consonant
inventories, permitted onset clusters, digraphs, modifiers and a handful
of exception lists. Rules are immutable once created.

A RuleSet aggregates all the rules known to a client. Some properties of a
rule depend on the whole set, most notably the characters which are unique
to a language. These are computed exactly once, when the set is built:

	eng, _ := rules.NewLanguageRule(engDefinition)
	rus, _ := rules.NewLanguageRule(rusDefinition)
	rs, err := rules.Build(eng, rus)
	…
	codes := rs.DetectLanguage("привет") // => [rus]

Adding or removing a language means building a new set.

Language detection is not statistical. A text is scored for every rule by
the fraction of its letters covered by the rule's alphabet; a letter
exclusive to one language is decisive evidence for it.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rules

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
