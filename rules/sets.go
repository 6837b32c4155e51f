package rules

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// RuneSet is a read-only set of characters.
// The zero value is an empty set.
type RuneSet struct {
	m map[rune]struct{}
}

// runeSetOf creates a set from all the runes of s, lowercased.
func runeSetOf(s string) RuneSet {
	if s == "" {
		return RuneSet{}
	}
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[unicode.ToLower(r)] = struct{}{}
	}
	return RuneSet{m: m}
}

func unionOf(sets ...RuneSet) RuneSet {
	m := make(map[rune]struct{})
	for _, s := range sets {
		for r := range s.m {
			m[r] = struct{}{}
		}
	}
	return RuneSet{m: m}
}

// Contains reports whether r is a member of the set.
func (s RuneSet) Contains(r rune) bool {
	_, ok := s.m[r]
	return ok
}

// Len returns the number of characters in the set.
func (s RuneSet) Len() int {
	return len(s.m)
}

// IsEmpty is true for a set without members.
func (s RuneSet) IsEmpty() bool {
	return len(s.m) == 0
}

// Runes returns the members of the set in ascending code-point order.
func (s RuneSet) Runes() []rune {
	ts := treeset.NewWith(utils.RuneComparator)
	for r := range s.m {
		ts.Add(r)
	}
	runes := make([]rune, 0, ts.Size())
	for _, v := range ts.Values() {
		runes = append(runes, v.(rune))
	}
	return runes
}

// String returns the members of the set as a string, in ascending order.
func (s RuneSet) String() string {
	return string(s.Runes())
}

// StringSet is a read-only set of short strings, e.g. digraphs or suffixes.
// The zero value is an empty set.
type StringSet struct {
	m map[string]struct{}
}

// stringSetOf creates a set from a list of entries, lowercased.
func stringSetOf(entries []string) StringSet {
	if len(entries) == 0 {
		return StringSet{}
	}
	m := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		m[strings.Map(unicode.ToLower, e)] = struct{}{}
	}
	return StringSet{m: m}
}

// Contains reports whether s is a member of the set.
func (s StringSet) Contains(str string) bool {
	_, ok := s.m[str]
	return ok
}

// AnyPrefixOf reports whether at least one entry of the set is equal to or
// a prefix of str.
func (s StringSet) AnyPrefixOf(str string) bool {
	for e := range s.m {
		if strings.HasPrefix(str, e) {
			return true
		}
	}
	return false
}

// Len returns the number of entries in the set.
func (s StringSet) Len() int {
	return len(s.m)
}

// IsEmpty is true for a set without members.
func (s StringSet) IsEmpty() bool {
	return len(s.m) == 0
}

// Strings returns the entries of the set in lexical order.
func (s StringSet) Strings() []string {
	ts := treeset.NewWith(utils.StringComparator)
	for e := range s.m {
		ts.Add(e)
	}
	entries := make([]string, 0, ts.Size())
	for _, v := range ts.Values() {
		entries = append(entries, v.(string))
	}
	return entries
}

// String returns the sorted entries of the set, separated by blanks.
func (s StringSet) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}
