/*
Package syllabreak inserts syllable boundaries into text and detects the
language of text, without relying on dictionaries.

Description

Both tasks are driven by declarative rules per language: inventories of
vowels and consonants, consonant clusters which may start a syllable,
digraphs, modifier characters and a handful of exceptions. Rules for a
number of languages are included (see package ruleconf); clients may
supply their own.

Language detection scores every language by the share of a text's letters
covered by the language's alphabet. A letter found in the alphabet of a
single language only is decisive evidence for that language.

Syllabification splits a text into words and non-words. Every word is cut
into phonological units, syllable nuclei are located and boundaries are
placed between nuclei, depending on the consonants in between. Non-words
are copied unchanged.

Typical Usage

  sb, err := syllabreak.NewDefault(syllabreak.WithSeparator("-"))
  if err != nil { … }
  s, _ := sb.Syllabify("hello problem", syllabreak.Auto)  // hel-lo pro-blem
  langs := sb.DetectLanguage("привет")                   // [rus ukr srp-cyrl]

Contents

Package rules holds immutable language rules and rule sets, including the
detection logic. Package ruleconf reads rule sets from YAML. Package segment
splits text into words and non-words, package grapheme splits words into
phonological units, and package syllable finds syllable boundaries within
single words. Package syllabreak ties everything together.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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
package syllabreak

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultSeparator is inserted at syllable boundaries, if not configured
// otherwise. It is the soft hyphen U+00AD, which is invisible unless a
// line is broken at its position.
const DefaultSeparator = "\u00AD"

// DefaultCacheSize is the number of syllabified words remembered by a
// Syllabreak, if not configured otherwise.
const DefaultCacheSize = 1024
