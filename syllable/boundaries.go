package syllable

import (
	"github.com/npillmayer/syllabreak/grapheme"
	"github.com/npillmayer/syllabreak/rules"
)

// PlaceBoundaries returns the unit indices where syllable separators are to
// be inserted, in ascending order. A boundary b means "insert a separator
// before unit b"; boundaries always satisfy 0 < b < len(units).
//
// Gaps between adjacent nuclei are decided independently of each other.
func PlaceBoundaries(units grapheme.Units, nuclei []int, rule *rules.LanguageRule) []int {
	p := planner{units: units, rule: rule}
	return p.appendBoundaries(nil, nuclei)
}

// planner decides on boundaries for the units of a single word.
type planner struct {
	units   grapheme.Units
	rule    *rules.LanguageRule
	cluster []int // scratch: consonant indices of the current gap
}

func (p *planner) appendBoundaries(boundaries []int, nuclei []int) []int {
	for k := 0; k+1 < len(nuclei); k++ {
		nk, nk1 := nuclei[k], nuclei[k+1]
		p.cluster = p.clusterBetween(p.cluster[:0], nk, nk1)
		if b, ok := p.boundary(nk, nk1); ok {
			boundaries = append(boundaries, b)
		}
	}
	return boundaries
}

// clusterBetween collects the consonant units between two nuclei, ignoring
// separators at the edges of the gap.
func (p *planner) clusterBetween(cluster []int, nk, nk1 int) []int {
	left, right := nk+1, nk1-1
	for left < len(p.units) && p.units[left].Class == grapheme.Separator {
		left++
	}
	for right >= 0 && p.units[right].Class == grapheme.Separator {
		right--
	}
	for i := left; i <= right && i < len(p.units); i++ {
		if p.units[i].Class == grapheme.Consonant {
			cluster = append(cluster, i)
		}
	}
	return cluster
}

func (p *planner) boundary(nk, nk1 int) (int, bool) {
	c := p.cluster
	switch len(c) {
	case 0:
		return p.hiatus(nk, nk1)
	case 1:
		return p.singleConsonant(c[0], nk, nk1)
	case 2:
		if p.isValidOnset(c[0], c[1], nk) {
			return c[0], true
		}
		return c[1], true
	}
	last := len(c) - 1
	if p.isValidOnset(c[last-1], c[last], nk) {
		return c[last-1], true
	}
	return c[last], true
}

// hiatus splits two vowel nuclei without a consonant in between, if the
// language wants that and the vowels do not form a digraph.
func (p *planner) hiatus(nk, nk1 int) (int, bool) {
	if !p.rule.SplitHiatus() {
		return 0, false
	}
	for i := nk + 1; i < nk1; i++ {
		if p.units[i].Class != grapheme.Separator {
			return 0, false
		}
	}
	pair := p.units[nk].Lower() + p.units[nk1].Lower()
	if p.rule.DigraphVowels().Contains(pair) {
		return 0, false
	}
	CT().Debugf("hiatus %q", pair)
	return nk1, true
}

// singleConsonant places the boundary before a single consonant (V-CV),
// except for protected sequences like English "-are", which stay together
// at the end of a word or before a light suffix (care, care-less), but are
// split before a breaking suffix (par-ent).
func (p *planner) singleConsonant(c, nk, nk1 int) (int, bool) {
	keep := p.rule.FinalSequencesKeep()
	if keep.IsEmpty() || !keep.Contains(p.units.JoinLower(nk, nk1+1)) {
		return c, true
	}
	n := len(p.units)
	restWithVowel := p.units.JoinLower(nk1, n)
	if p.rule.SuffixesBreakVre().AnyPrefixOf(restWithVowel) {
		return nk1, true
	}
	if nk1 == n-1 {
		return 0, false
	}
	restAfterVowel := p.units.JoinLower(nk1+1, n)
	if restAfterVowel != "" && p.rule.SuffixesKeepVre().Contains(restAfterVowel) {
		return 0, false
	}
	return c, true
}

// isValidOnset checks if two consonants may start a syllable together.
// Some onsets are valid only after a long nucleus.
func (p *planner) isValidOnset(c1, c2, nucleus int) bool {
	onset := p.units[c1].Lower() + p.units[c2].Lower()
	if p.rule.ClustersOnlyAfterLong().Contains(onset) && !p.isLongNucleus(nucleus) {
		return false
	}
	return p.rule.ClustersKeepNext().Contains(onset)
}

// isLongNucleus is true for vowel digraphs, either as a single unit or
// together with the unit following it.
func (p *planner) isLongNucleus(n int) bool {
	if n >= len(p.units) {
		return false
	}
	v := p.units[n].Lower()
	if p.rule.DigraphVowels().Contains(v) {
		return true
	}
	return n+1 < len(p.units) && p.rule.DigraphVowels().Contains(v+p.units[n+1].Lower())
}
