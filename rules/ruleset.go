package rules

import (
	"fmt"
	"sort"
)

// RuleSet is an immutable, ordered collection of language rules, keyed by
// language code. The order of the rules is significant: it decides between
// languages scoring equally during detection.
type RuleSet struct {
	rules  []*LanguageRule
	byLang map[string]*LanguageRule
	known  RuneSet
}

// Build creates a rule set from a list of rules. Rules are copied into the
// set and the set-dependent properties of every rule (UniqueChars) are
// computed in one go. Input rules are left untouched.
//
// Build fails with a *ConfigError if a rule is nil or if a language code
// occurs more than once. An empty list results in an empty rule set.
func Build(rules ...*LanguageRule) (*RuleSet, error) {
	rs := &RuleSet{
		rules:  make([]*LanguageRule, 0, len(rules)),
		byLang: make(map[string]*LanguageRule, len(rules)),
	}
	for i, rule := range rules {
		if rule == nil {
			return nil, invalid("", "", "rule #%d is nil", i)
		}
		if _, dup := rs.byLang[rule.lang]; dup {
			return nil, &ConfigError{
				Lang: rule.lang,
				Err:  fmt.Errorf("%w: %q", ErrDuplicateLanguage, rule.lang),
			}
		}
		member := *rule
		rs.byLang[rule.lang] = &member
		rs.rules = append(rs.rules, &member)
	}
	all := make([]RuneSet, len(rs.rules))
	for i, member := range rs.rules {
		all[i] = member.allChars
	}
	for i, member := range rs.rules {
		unique := make(map[rune]struct{})
	NEXT:
		for r := range member.allChars.m {
			for j, other := range all {
				if j != i && other.Contains(r) {
					continue NEXT
				}
			}
			unique[r] = struct{}{}
		}
		member.uniqueChars = RuneSet{m: unique}
		CT().P("lang", member.lang).Debugf("unique characters: %q", member.uniqueChars.String())
	}
	rs.known = unionOf(all...)
	CT().Infof("rule set built with %d language(s)", len(rs.rules))
	return rs, nil
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns the rules of the set in order. The returned slice is a copy.
func (rs *RuleSet) Rules() []*LanguageRule {
	if rs == nil {
		return nil
	}
	rules := make([]*LanguageRule, len(rs.rules))
	copy(rules, rs.rules)
	return rules
}

// Codes returns the language codes of the set in order.
func (rs *RuleSet) Codes() []string {
	if rs == nil {
		return nil
	}
	codes := make([]string, len(rs.rules))
	for i, rule := range rs.rules {
		codes[i] = rule.lang
	}
	return codes
}

// Rule returns the rule for a language code.
func (rs *RuleSet) Rule(lang string) (*LanguageRule, bool) {
	if rs == nil {
		return nil, false
	}
	rule, ok := rs.byLang[lang]
	return rule, ok
}

// KnownChars is the union of the alphabets of all rules of the set.
func (rs *RuleSet) KnownChars() RuneSet {
	if rs == nil {
		return RuneSet{}
	}
	return rs.known
}

// Match is a language rule together with its detection score for a text.
type Match struct {
	Rule  *LanguageRule
	Score float64
}

// Scores ranks all rules of the set for text. Only rules with a score > 0
// are included, best match first. Rules with equal scores keep the order of
// the rule set.
//
// A rule owning a character unique to it within the set scores 1.0
// whenever text contains such a character.
func (rs *RuleSet) Scores(text string) []Match {
	if rs == nil || text == "" {
		return nil
	}
	clean := letters(text)
	if len(clean) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(rs.rules))
	for _, rule := range rs.rules {
		score := rule.score(clean)
		if !rule.uniqueChars.IsEmpty() && containsAny(rule.uniqueChars, clean) {
			score = 1.0
		}
		if score > 0 {
			matches = append(matches, Match{Rule: rule, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// FindMatches returns the rules matching text, best match first.
// See Scores.
func (rs *RuleSet) FindMatches(text string) []*LanguageRule {
	matches := rs.Scores(text)
	rules := make([]*LanguageRule, len(matches))
	for i, m := range matches {
		rules[i] = m.Rule
	}
	return rules
}

// DetectLanguage returns the codes of the languages matching text, best match
// first. The result is empty, but never nil, if no language matches.
func (rs *RuleSet) DetectLanguage(text string) []string {
	matches := rs.Scores(text)
	codes := make([]string, len(matches))
	for i, m := range matches {
		codes[i] = m.Rule.lang
	}
	CT().Debugf("detected languages for %q: %v", text, codes)
	return codes
}

func containsAny(set RuneSet, runes []rune) bool {
	for _, r := range runes {
		if set.Contains(r) {
			return true
		}
	}
	return false
}
