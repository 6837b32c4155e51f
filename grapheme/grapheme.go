package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/syllabreak/rules"
)

// Tokenize splits a word into phonological units, according to the rules of
// a language.
func Tokenize(word string, rule *rules.LanguageRule) Units {
	var tz Tokenizer
	return tz.Append(nil, word, rule)
}

// Tokenizer splits words into units. A Tokenizer holds buffers which are
// re-used across calls, therefore a Tokenizer must not be used concurrently.
// The zero value is ready to use.
type Tokenizer struct {
	word  string
	offs  []int  // byte offset of every rune of word, plus len(word)
	lower []rune // runes of word, lowercased
}

// Append splits word into units and appends them to dst.
//
// At every position the following matches are tried, in this order:
//
//   1. a left-attaching modifier is appended to the previous unit
//   2. a separator becomes a unit of its own
//   3. a consonant digraph (2 or 1 characters) becomes a consonant unit
//   4. a vowel digraph (3 or 2 characters) becomes a vowel unit
//   5. any other character becomes a unit of its own, possibly
//      absorbing a right-attaching modifier following it
//
func (tz *Tokenizer) Append(dst Units, word string, rule *rules.LanguageRule) Units {
	tz.prepare(word)
	base := len(dst)
	n := len(tz.lower)
	for pos := 0; pos < n; {
		r := tz.lower[pos]
		switch {
		case rule.ModifiersAttachLeft().Contains(r):
			if len(dst) > base {
				last := &dst[len(dst)-1]
				last.End = tz.offs[pos+1]
				last.Surface = word[last.Start:last.End]
				last.Modifier = true
			} else {
				u := tz.unit(pos, 1, Other)
				u.Modifier = true
				dst = append(dst, u)
			}
			pos++
		case rule.ModifiersSeparators().Contains(r):
			dst = append(dst, tz.unit(pos, 1, Separator))
			pos++
		default:
			if l := tz.match(pos, rule.DontSplitDigraphs(), 2, 1); l > 0 {
				dst = append(dst, tz.unit(pos, l, Consonant))
				pos += l
				continue
			}
			if l := tz.match(pos, rule.DigraphVowels(), 3, 2); l > 0 {
				u := tz.unit(pos, l, Vowel)
				for _, c := range tz.lower[pos : pos+l] {
					if rule.Glides().Contains(c) {
						u.Glide = true
						break
					}
				}
				dst = append(dst, u)
				pos += l
				continue
			}
			class := Other
			if rule.Vowels().Contains(r) {
				class = Vowel
			} else if rule.Consonants().Contains(r) {
				class = Consonant
			}
			u := tz.unit(pos, 1, class)
			u.Glide = rule.Glides().Contains(r)
			pos++
			if pos < n && rule.ModifiersAttachRight().Contains(tz.lower[pos]) {
				u.End = tz.offs[pos+1]
				u.Surface = word[u.Start:u.End]
				u.Modifier = true
				pos++
			}
			dst = append(dst, u)
		}
	}
	if CT().GetTraceLevel() >= tracing.LevelDebug {
		CT().P("lang", rule.Lang()).Debugf("units(%q) = %v", word, dst[base:])
	}
	return dst
}

// prepare decodes word into runes and remembers their byte offsets.
func (tz *Tokenizer) prepare(word string) {
	tz.word = word
	tz.offs = tz.offs[:0]
	tz.lower = tz.lower[:0]
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		tz.offs = append(tz.offs, i)
		tz.lower = append(tz.lower, unicode.ToLower(r))
		i += size
	}
	tz.offs = append(tz.offs, len(word))
}

// unit creates a unit spanning l runes, starting at rune position pos.
func (tz *Tokenizer) unit(pos, l int, class UnitClass) Unit {
	start, end := tz.offs[pos], tz.offs[pos+l]
	return Unit{
		Surface: tz.word[start:end],
		Class:   class,
		Start:   start,
		End:     end,
	}
}

// match tries to find the lowercase substring at rune position pos in set,
// for each of the given lengths in turn. It returns the first length
// matching, or 0.
func (tz *Tokenizer) match(pos int, set rules.StringSet, lengths ...int) int {
	if set.IsEmpty() {
		return 0
	}
	for _, l := range lengths {
		if pos+l > len(tz.lower) {
			continue
		}
		if set.Contains(string(tz.lower[pos : pos+l])) {
			return l
		}
	}
	return 0
}
