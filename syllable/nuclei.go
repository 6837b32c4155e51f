package syllable

import (
	"sort"

	"github.com/npillmayer/syllabreak/grapheme"
	"github.com/npillmayer/syllabreak/rules"
)

// FindNuclei returns the indices of the units anchoring syllables, in
// ascending order. An empty result means the word should not be split.
func FindNuclei(units grapheme.Units, rule *rules.LanguageRule) []int {
	return appendNuclei(nil, units, rule)
}

func appendNuclei(nuclei []int, units grapheme.Units, rule *rules.LanguageRule) []int {
	for i, u := range units {
		if u.Class == grapheme.Vowel {
			nuclei = append(nuclei, i)
		}
	}
	if len(nuclei) > 0 && !rule.FinalSemivowels().IsEmpty() {
		if last := nuclei[len(nuclei)-1]; isFinalSemivowel(units, last, rule) {
			CT().Debugf("nucleus %q is a final semivowel", units[last].Surface)
			nuclei = nuclei[:len(nuclei)-1]
		}
	}
	if len(nuclei) > 0 && !rule.SyllabicConsonants().IsEmpty() {
		nuclei = promoteSyllabicConsonants(nuclei, units, rule)
	}
	if len(nuclei) > 0 {
		return nuclei
	}
	// No vowels left: a syllabic consonant anywhere may carry a syllable.
	for i, u := range units {
		if isSyllabicConsonant(u, rule) {
			nuclei = append(nuclei, i)
		}
	}
	return nuclei
}

// isFinalSemivowel is true if the nucleus at n is effectively word-final, is
// a semivowel and is preceded by a consonant.
func isFinalSemivowel(units grapheme.Units, n int, rule *rules.LanguageRule) bool {
	for _, u := range units[n+1:] {
		switch u.Class {
		case grapheme.Separator, grapheme.Other:
		default:
			return false
		}
	}
	if !rule.FinalSemivowels().Contains(units[n].FirstLower()) {
		return false
	}
	return n > 0 && units[n-1].Class == grapheme.Consonant
}

func isSyllabicConsonant(u grapheme.Unit, rule *rules.LanguageRule) bool {
	return u.Class == grapheme.Consonant && rule.SyllabicConsonants().Contains(u.FirstLower())
}

// promoteSyllabicConsonants adds syllabic consonants to a list of vowel
// nuclei. A syllabic consonant is promoted if it is surrounded by consonants
// (or the word's edge) and at least one consonant separates it from the
// nearest vowel unit on either side.
func promoteSyllabicConsonants(nuclei []int, units grapheme.Units, rule *rules.LanguageRule) []int {
	n := len(nuclei)
	for i, u := range units {
		if !isSyllabicConsonant(u, rule) {
			continue
		}
		prevIsConsonant := i == 0 || units[i-1].Class == grapheme.Consonant
		nextIsConsonant := i == len(units)-1 || units[i+1].Class == grapheme.Consonant
		if !prevIsConsonant || !nextIsConsonant {
			continue
		}
		distPrev, distNext := i+1, len(units)-i // distances to the word's edges
		for j := i - 1; j >= 0; j-- {
			if units[j].Class == grapheme.Vowel {
				distPrev = i - j
				break
			}
		}
		for j := i + 1; j < len(units); j++ {
			if units[j].Class == grapheme.Vowel {
				distNext = j - i
				break
			}
		}
		if distPrev > 1 && distNext > 1 {
			CT().Debugf("promoting syllabic consonant %q at %d", u.Surface, i)
			nuclei = append(nuclei, i)
		}
	}
	if len(nuclei) > n {
		sort.Ints(nuclei)
	}
	return nuclei
}
