package rules

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func mustRule(t *testing.T, def Definition) *LanguageRule {
	t.Helper()
	rule, err := NewLanguageRule(def)
	if err != nil {
		t.Fatalf("cannot create rule %q: %v", def.Lang, err)
	}
	return rule
}

var engDef = Definition{
	Lang:             "eng",
	Vowels:           "aeiouy",
	Consonants:       "bcdfghjklmnpqrstvwxz",
	ClustersKeepNext: []string{"pr", "bl"},
}

var rusDef = Definition{
	Lang:                "rus",
	Vowels:              "аеёиоуыэюя",
	Consonants:          "бвгджзйклмнпрстфхцчшщ",
	ModifiersAttachLeft: "ьъ",
}

var ukrDef = Definition{
	Lang:                "ukr",
	Vowels:              "аеєиіїоуюя",
	Consonants:          "бвгґджзйклмнпрстфхцчшщ",
	ModifiersAttachLeft: "ь'",
}

func TestRuleCreation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rule := mustRule(t, Definition{
		Lang:             "xx",
		Vowels:           "AEI",
		Consonants:       "bcd",
		ClustersKeepNext: []string{"BR"},
	})
	if !rule.Vowels().Contains('a') || rule.Vowels().Contains('A') {
		t.Errorf("expected vowels to be held in lowercase, are %q", rule.Vowels())
	}
	if !rule.ClustersKeepNext().Contains("br") {
		t.Errorf("expected cluster 'br' to be lowercased, have %v", rule.ClustersKeepNext())
	}
	if rule.AllChars().String() != "abcdei" {
		t.Errorf("expected all chars to be 'abcdei', is %q", rule.AllChars())
	}
	if !rule.UniqueChars().IsEmpty() {
		t.Errorf("free-standing rule should not have unique chars, has %q", rule.UniqueChars())
	}
}

func TestRuleValidation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	defs := []Definition{
		{Vowels: "a", Consonants: "b"},
		{Lang: "xx", Consonants: "b"},
		{Lang: "xx", Vowels: "a"},
		{Lang: "xx", Vowels: "a", Consonants: "b", DigraphVowels: []string{"ai", ""}},
	}
	for i, def := range defs {
		_, err := NewLanguageRule(def)
		if err == nil {
			t.Errorf("#%d: expected rule definition to be rejected", i)
			continue
		}
		var cerr *ConfigError
		if !errors.As(err, &cerr) || !errors.Is(err, ErrInvalidRule) {
			t.Errorf("#%d: expected ConfigError wrapping ErrInvalidRule, is %v", i, err)
		}
	}
}

func TestMatchScore(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	eng := mustRule(t, engDef)
	if s := eng.MatchScore("Hello!"); s != 1.0 {
		t.Errorf("expected score of 'Hello!' to be 1.0, is %f", s)
	}
	if s := eng.MatchScore("abпр"); s != 0.5 {
		t.Errorf("expected score of mixed text to be 0.5, is %f", s)
	}
	if s := eng.MatchScore("123 ..."); s != 0 {
		t.Errorf("expected score of text without letters to be 0, is %f", s)
	}
}

func TestBuildRejectsDuplicates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	eng := mustRule(t, engDef)
	_, err := Build(eng, mustRule(t, rusDef), eng)
	if !errors.Is(err, ErrDuplicateLanguage) {
		t.Errorf("expected duplicate language error, have %v", err)
	}
	if _, err = Build(eng, nil); err == nil {
		t.Errorf("expected nil rule to be rejected")
	}
}

func TestUniqueChars(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rus, ukr := mustRule(t, rusDef), mustRule(t, ukrDef)
	rs, err := Build(mustRule(t, engDef), rus, ukr)
	if err != nil {
		t.Fatal(err)
	}
	r, _ := rs.Rule("rus")
	if r.UniqueChars().String() != "ъыэё" {
		t.Errorf("expected unique chars of rus to be 'ъыэё', are %q", r.UniqueChars())
	}
	u, _ := rs.Rule("ukr")
	if u.UniqueChars().String() != "'єіїґ" {
		t.Errorf("expected unique chars of ukr to be \"'єіїґ\", are %q", u.UniqueChars())
	}
	e, _ := rs.Rule("eng")
	if e.UniqueChars().Len() != e.AllChars().Len() {
		t.Errorf("expected all chars of eng to be unique")
	}
	if !rus.UniqueChars().IsEmpty() {
		t.Errorf("building a rule set must not modify the input rules")
	}
	if rs.KnownChars().Len() <= e.AllChars().Len() {
		t.Errorf("expected known chars to cover all rules, have %d", rs.KnownChars().Len())
	}
}

func TestDetectLanguage(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	rs, err := Build(mustRule(t, engDef), mustRule(t, rusDef), mustRule(t, ukrDef))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		text string
		want []string
	}{
		{"", []string{}},
		{"1234 !?", []string{}},
		{"hello", []string{"eng"}},
		{"привет", []string{"rus", "ukr"}},
		{"їжак", []string{"ukr", "rus"}},
		{"объём", []string{"rus", "ukr"}},
		{"Hello, привет", []string{"eng", "rus", "ukr"}},
	}
	for _, c := range cases {
		got := rs.DetectLanguage(c.text)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("expected languages for %q to be %v, are %v", c.text, c.want, got)
		}
	}
}

func TestDetectionIsDeterministic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	rs, _ := Build(mustRule(t, rusDef), mustRule(t, ukrDef))
	first := rs.DetectLanguage("мама мыла раму")
	for i := 0; i < 20; i++ {
		if got := rs.DetectLanguage("мама мыла раму"); !reflect.DeepEqual(got, first) {
			t.Fatalf("detection not deterministic: %v vs %v", got, first)
		}
	}
	if first[0] != "rus" {
		t.Errorf("expected unique character 'ы' to rank rus first, have %v", first)
	}
}

func TestTiesKeepSetOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	a := mustRule(t, Definition{Lang: "a", Vowels: "ao", Consonants: "mx"})
	b := mustRule(t, Definition{Lang: "b", Vowels: "ao", Consonants: "my"})
	rs, _ := Build(b, a)
	if got := rs.DetectLanguage("mama"); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("expected ties to keep rule set order [b a], have %v", got)
	}
	scores := rs.Scores("mama")
	if len(scores) != 2 || scores[0].Score != 1.0 {
		t.Errorf("expected two full-score matches, have %v", scores)
	}
}

func TestEmptyRuleSet(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	rs, err := Build()
	if err != nil {
		t.Fatal(err)
	}
	if rs.Len() != 0 || len(rs.DetectLanguage("hello")) != 0 {
		t.Errorf("expected empty rule set to detect nothing")
	}
	if _, ok := rs.Rule("eng"); ok {
		t.Errorf("expected empty rule set to hold no rules")
	}
}

func TestStringSetPrefixes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	set := stringSetOf([]string{"ent", "ENCE"})
	for str, expected := range map[string]bool{
		"ent":     true,
		"ently":   true,
		"ence":    true,
		"en":      false,
		"ament":   false,
		"":        false,
		"entence": true,
	} {
		if set.AnyPrefixOf(str) != expected {
			t.Errorf("expected AnyPrefixOf(%q) to be %v", str, expected)
		}
	}
	if set.String() != "[ence ent]" {
		t.Errorf("expected set to list as [ence ent], is %s", set)
	}
}
