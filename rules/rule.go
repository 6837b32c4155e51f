package rules

import (
	"strings"
	"unicode"
)

// Definition is the plain data form of a language rule, as it is read from
// a rule source. Character classes are given as strings of characters,
// multi-character rules as lists of strings.
//
// A Definition is turned into a LanguageRule by NewLanguageRule.
type Definition struct {
	Lang                  string
	Vowels                string
	Consonants            string
	Sonorants             string
	Glides                string
	SyllabicConsonants    string
	ModifiersAttachLeft   string
	ModifiersAttachRight  string
	ModifiersSeparators   string
	FinalSemivowels       string
	ClustersKeepNext      []string
	ClustersOnlyAfterLong []string
	DontSplitDigraphs     []string
	DigraphVowels         []string
	FinalSequencesKeep    []string
	SuffixesBreakVre      []string
	SuffixesKeepVre       []string
	SplitHiatus           bool
}

// LanguageRule is the immutable set of phonological rules for a language.
//
// All characters and strings of a rule are held in lowercase. Clients
// query a rule through its accessor methods; none of them allows
// modification.
type LanguageRule struct {
	lang                  string
	vowels                RuneSet
	consonants            RuneSet
	sonorants             RuneSet
	glides                RuneSet
	syllabicConsonants    RuneSet
	modifiersAttachLeft   RuneSet
	modifiersAttachRight  RuneSet
	modifiersSeparators   RuneSet
	finalSemivowels       RuneSet
	clustersKeepNext      StringSet
	clustersOnlyAfterLong StringSet
	dontSplitDigraphs     StringSet
	digraphVowels         StringSet
	finalSequencesKeep    StringSet
	suffixesBreakVre      StringSet
	suffixesKeepVre       StringSet
	splitHiatus           bool
	allChars              RuneSet // derived
	uniqueChars           RuneSet // derived from the rule set this rule is a member of
}

// NewLanguageRule validates a rule definition and creates an immutable
// LanguageRule from it. Errors are of type *ConfigError.
func NewLanguageRule(def Definition) (*LanguageRule, error) {
	lang := strings.TrimSpace(def.Lang)
	if lang == "" {
		return nil, invalid("", "lang", "language code missing")
	}
	if strings.TrimSpace(def.Vowels) == "" {
		return nil, invalid(lang, "vowels", "no vowels defined")
	}
	if strings.TrimSpace(def.Consonants) == "" {
		return nil, invalid(lang, "consonants", "no consonants defined")
	}
	lists := []struct {
		field   string
		entries []string
	}{
		{"clusters_keep_next", def.ClustersKeepNext},
		{"clusters_only_after_long", def.ClustersOnlyAfterLong},
		{"dont_split_digraphs", def.DontSplitDigraphs},
		{"digraph_vowels", def.DigraphVowels},
		{"final_sequences_keep", def.FinalSequencesKeep},
		{"suffixes_break_vre", def.SuffixesBreakVre},
		{"suffixes_keep_vre", def.SuffixesKeepVre},
	}
	for _, l := range lists {
		for i, e := range l.entries {
			if e == "" {
				return nil, invalid(lang, l.field, "entry #%d is empty", i)
			}
		}
	}
	rule := &LanguageRule{
		lang:                  lang,
		vowels:                runeSetOf(def.Vowels),
		consonants:            runeSetOf(def.Consonants),
		sonorants:             runeSetOf(def.Sonorants),
		glides:                runeSetOf(def.Glides),
		syllabicConsonants:    runeSetOf(def.SyllabicConsonants),
		modifiersAttachLeft:   runeSetOf(def.ModifiersAttachLeft),
		modifiersAttachRight:  runeSetOf(def.ModifiersAttachRight),
		modifiersSeparators:   runeSetOf(def.ModifiersSeparators),
		finalSemivowels:       runeSetOf(def.FinalSemivowels),
		clustersKeepNext:      stringSetOf(def.ClustersKeepNext),
		clustersOnlyAfterLong: stringSetOf(def.ClustersOnlyAfterLong),
		dontSplitDigraphs:     stringSetOf(def.DontSplitDigraphs),
		digraphVowels:         stringSetOf(def.DigraphVowels),
		finalSequencesKeep:    stringSetOf(def.FinalSequencesKeep),
		suffixesBreakVre:      stringSetOf(def.SuffixesBreakVre),
		suffixesKeepVre:       stringSetOf(def.SuffixesKeepVre),
		splitHiatus:           def.SplitHiatus,
	}
	rule.allChars = unionOf(rule.vowels, rule.consonants, rule.modifiersAttachLeft,
		rule.modifiersAttachRight, rule.modifiersSeparators)
	CT().P("lang", lang).Debugf("created language rule with %d characters", rule.allChars.Len())
	return rule, nil
}

// Lang is the language code of the rule, e.g. "eng" or "srp-cyrl".
func (rule *LanguageRule) Lang() string { return rule.lang }

func (rule *LanguageRule) Vowels() RuneSet               { return rule.vowels }
func (rule *LanguageRule) Consonants() RuneSet           { return rule.consonants }
func (rule *LanguageRule) Sonorants() RuneSet            { return rule.sonorants }
func (rule *LanguageRule) Glides() RuneSet               { return rule.glides }
func (rule *LanguageRule) SyllabicConsonants() RuneSet   { return rule.syllabicConsonants }
func (rule *LanguageRule) ModifiersAttachLeft() RuneSet  { return rule.modifiersAttachLeft }
func (rule *LanguageRule) ModifiersAttachRight() RuneSet { return rule.modifiersAttachRight }
func (rule *LanguageRule) ModifiersSeparators() RuneSet  { return rule.modifiersSeparators }
func (rule *LanguageRule) FinalSemivowels() RuneSet      { return rule.finalSemivowels }

// ClustersKeepNext are the two-letter consonant clusters which are valid
// syllable onsets, i.e. stay together at the start of the next syllable.
func (rule *LanguageRule) ClustersKeepNext() StringSet { return rule.clustersKeepNext }

// ClustersOnlyAfterLong are onsets which are valid only after a long nucleus.
func (rule *LanguageRule) ClustersOnlyAfterLong() StringSet { return rule.clustersOnlyAfterLong }

// DontSplitDigraphs are consonant digraphs, treated as a single consonant.
func (rule *LanguageRule) DontSplitDigraphs() StringSet { return rule.dontSplitDigraphs }

// DigraphVowels are vowel digraphs and diphthongs, treated as a single vowel.
func (rule *LanguageRule) DigraphVowels() StringSet { return rule.digraphVowels }

func (rule *LanguageRule) FinalSequencesKeep() StringSet { return rule.finalSequencesKeep }
func (rule *LanguageRule) SuffixesBreakVre() StringSet   { return rule.suffixesBreakVre }
func (rule *LanguageRule) SuffixesKeepVre() StringSet    { return rule.suffixesKeepVre }

// SplitHiatus is true if adjacent vowels, not forming a digraph, belong to
// different syllables.
func (rule *LanguageRule) SplitHiatus() bool { return rule.splitHiatus }

// AllChars is the union of all the character classes of the rule which
// contribute to language detection.
func (rule *LanguageRule) AllChars() RuneSet { return rule.allChars }

// UniqueChars are the characters of the rule not present in any other rule
// of the RuleSet the rule belongs to. For rules not taken from a RuleSet
// this is always empty.
func (rule *LanguageRule) UniqueChars() RuneSet { return rule.uniqueChars }

// MatchScore returns the fraction of letters in text covered by the alphabet
// of the rule. The result is in [0…1]. Non-letters are ignored and a text
// without letters scores 0.
func (rule *LanguageRule) MatchScore(text string) float64 {
	return rule.score(letters(text))
}

func (rule *LanguageRule) score(clean []rune) float64 {
	if len(clean) == 0 {
		return 0
	}
	matches := 0
	for _, r := range clean {
		if rule.allChars.Contains(r) {
			matches++
		}
	}
	return float64(matches) / float64(len(clean))
}

func (rule *LanguageRule) String() string {
	return "rule[" + rule.lang + "]"
}

// letters lowercases text and drops everything but letters.
func letters(text string) []rune {
	clean := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsLetter(r) {
			clean = append(clean, unicode.ToLower(r))
		}
	}
	return clean
}
