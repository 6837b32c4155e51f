package ruleconf

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/syllabreak/rules"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is wrapped by configuration errors for rule documents which
// cannot be decoded.
var ErrMalformed = errors.New("malformed rule document")

//go:embed rules.yaml
var defaultRules []byte

type document struct {
	Rules []entry `yaml:"rules"`
}

type entry struct {
	Lang                  string   `yaml:"lang"`
	Vowels                string   `yaml:"vowels"`
	Consonants            string   `yaml:"consonants"`
	Sonorants             string   `yaml:"sonorants"`
	Glides                string   `yaml:"glides"`
	SyllabicConsonants    string   `yaml:"syllabic_consonants"`
	ModifiersAttachLeft   string   `yaml:"modifiers_attach_left"`
	ModifiersAttachRight  string   `yaml:"modifiers_attach_right"`
	ModifiersSeparators   string   `yaml:"modifiers_separators"`
	FinalSemivowels       string   `yaml:"final_semivowels"`
	ClustersKeepNext      []string `yaml:"clusters_keep_next"`
	ClustersOnlyAfterLong []string `yaml:"clusters_only_after_long"`
	DontSplitDigraphs     []string `yaml:"dont_split_digraphs"`
	DigraphVowels         []string `yaml:"digraph_vowels"`
	FinalSequencesKeep    []string `yaml:"final_sequences_keep"`
	SuffixesBreakVre      []string `yaml:"suffixes_break_vre"`
	SuffixesKeepVre       []string `yaml:"suffixes_keep_vre"`
	SplitHiatus           bool     `yaml:"split_hiatus"`
}

func (e entry) definition() rules.Definition {
	return rules.Definition{
		Lang:                  nfc(e.Lang),
		Vowels:                nfc(e.Vowels),
		Consonants:            nfc(e.Consonants),
		Sonorants:             nfc(e.Sonorants),
		Glides:                nfc(e.Glides),
		SyllabicConsonants:    nfc(e.SyllabicConsonants),
		ModifiersAttachLeft:   nfc(e.ModifiersAttachLeft),
		ModifiersAttachRight:  nfc(e.ModifiersAttachRight),
		ModifiersSeparators:   nfc(e.ModifiersSeparators),
		FinalSemivowels:       nfc(e.FinalSemivowels),
		ClustersKeepNext:      nfcAll(e.ClustersKeepNext),
		ClustersOnlyAfterLong: nfcAll(e.ClustersOnlyAfterLong),
		DontSplitDigraphs:     nfcAll(e.DontSplitDigraphs),
		DigraphVowels:         nfcAll(e.DigraphVowels),
		FinalSequencesKeep:    nfcAll(e.FinalSequencesKeep),
		SuffixesBreakVre:      nfcAll(e.SuffixesBreakVre),
		SuffixesKeepVre:       nfcAll(e.SuffixesKeepVre),
		SplitHiatus:           e.SplitHiatus,
	}
}

func nfc(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func nfcAll(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = nfc(s)
	}
	return out
}

// Load reads a YAML rule document and creates a rule set from it.
// All errors are of type *rules.ConfigError; no partial rule set is ever
// returned.
func Load(r io.Reader) (*rules.RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("document is empty")
		}
		CT().Errorf("cannot decode rule document: %v", err)
		return nil, &rules.ConfigError{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if doc.Rules == nil {
		return nil, &rules.ConfigError{
			Field: "rules",
			Err:   fmt.Errorf("%w: list of rules missing", ErrMalformed),
		}
	}
	list := make([]*rules.LanguageRule, 0, len(doc.Rules))
	for i, e := range doc.Rules {
		rule, err := rules.NewLanguageRule(e.definition())
		if err != nil {
			CT().Errorf("rule #%d: %v", i, err)
			return nil, err
		}
		list = append(list, rule)
	}
	rs, err := rules.Build(list...)
	if err != nil {
		CT().Errorf("%v", err)
		return nil, err
	}
	CT().Infof("loaded rules for %v", rs.Codes())
	return rs, nil
}

// LoadFile reads a YAML rule document from a file, see Load.
func LoadFile(path string) (*rules.RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &rules.ConfigError{Err: err}
	}
	defer f.Close()
	return Load(f)
}

var defaultSet struct {
	once sync.Once
	rs   *rules.RuleSet
	err  error
}

// Default returns the rule set for the rule document embedded into this
// package. The rule set is created once and shared between callers.
func Default() (*rules.RuleSet, error) {
	defaultSet.once.Do(func() {
		defaultSet.rs, defaultSet.err = Load(bytes.NewReader(defaultRules))
	})
	return defaultSet.rs, defaultSet.err
}
