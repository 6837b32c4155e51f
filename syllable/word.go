package syllable

import (
	"github.com/npillmayer/syllabreak/grapheme"
	"github.com/npillmayer/syllabreak/rules"
)

// Syllabifier inserts syllable separators into words, following the rules
// of a single language. A Syllabifier is immutable and may be shared between
// goroutines.
type Syllabifier struct {
	rule *rules.LanguageRule
	sep  string
}

// NewSyllabifier creates a syllabifier for a language. sep is inserted at
// every syllable boundary.
func NewSyllabifier(rule *rules.LanguageRule, sep string) *Syllabifier {
	if rule == nil {
		panic("syllable: syllabifier needs a language rule")
	}
	return &Syllabifier{rule: rule, sep: sep}
}

// Rule returns the language rule of s.
func (s *Syllabifier) Rule() *rules.LanguageRule {
	return s.rule
}

// Separator returns the boundary marker of s.
func (s *Syllabifier) Separator() string {
	return s.sep
}

// Word returns word with a separator inserted at every syllable boundary.
// Words without a nucleus or without boundaries are returned unchanged.
func (s *Syllabifier) Word(word string) string {
	if word == "" {
		return word
	}
	sc := borrowScratch()
	defer sc.release()
	if !sc.analyze(word, s.rule) {
		return word
	}
	for i, span := range s.cuts(sc) {
		if i > 0 {
			sc.out.WriteString(s.sep)
		}
		sc.out.WriteString(word[span[0]:span[1]])
	}
	return sc.out.String()
}

// Syllables splits word into syllables. Concatenating the syllables
// reproduces word. An empty word results in an empty slice.
func (s *Syllabifier) Syllables(word string) []string {
	if word == "" {
		return []string{}
	}
	sc := borrowScratch()
	defer sc.release()
	if !sc.analyze(word, s.rule) {
		return []string{word}
	}
	spans := s.cuts(sc)
	syllables := make([]string, len(spans))
	for i, span := range spans {
		syllables[i] = word[span[0]:span[1]]
	}
	return syllables
}

// cuts returns the byte spans of the syllables of an analyzed word.
func (s *Syllabifier) cuts(sc *scratch) [][2]int {
	spans := make([][2]int, 0, len(sc.boundaries)+1)
	start := 0
	for _, b := range sc.boundaries {
		end := sc.units[b].Start
		spans = append(spans, [2]int{start, end})
		start = end
	}
	return append(spans, [2]int{start, sc.units[len(sc.units)-1].End})
}

// Analysis holds the intermediate results of syllabifying a single word.
type Analysis struct {
	Units      grapheme.Units // phonological units of the word
	Nuclei     []int          // indices of units anchoring syllables
	Boundaries []int          // separators go before these units
}

// Analyze runs the syllabification steps for word and returns their
// results, without assembling an output string.
func (s *Syllabifier) Analyze(word string) Analysis {
	units := grapheme.Tokenize(word, s.rule)
	nuclei := FindNuclei(units, s.rule)
	var boundaries []int
	if len(nuclei) > 0 {
		boundaries = PlaceBoundaries(units, nuclei, s.rule)
	}
	return Analysis{Units: units, Nuclei: nuclei, Boundaries: boundaries}
}

// Assemble concatenates the surfaces of units, inserting sep before every
// unit listed in boundaries. boundaries must be ascending.
func Assemble(units grapheme.Units, boundaries []int, sep string) string {
	var out []byte
	last := 0
	for _, b := range boundaries {
		out = append(out, units.Join(last, b)...)
		out = append(out, sep...)
		last = b
	}
	out = append(out, units.Join(last, len(units))...)
	return string(out)
}

// analyze fills the scratch buffers for word. It returns false if the word
// is not to be split.
func (sc *scratch) analyze(word string, rule *rules.LanguageRule) bool {
	sc.units = sc.tz.Append(sc.units[:0], word, rule)
	sc.nuclei = appendNuclei(sc.nuclei[:0], sc.units, rule)
	if len(sc.nuclei) == 0 {
		return false
	}
	sc.planner.units, sc.planner.rule = sc.units, rule
	sc.boundaries = sc.planner.appendBoundaries(sc.boundaries[:0], sc.nuclei)
	CT().P("word", word).Debugf("nuclei=%v, boundaries=%v", sc.nuclei, sc.boundaries)
	return len(sc.boundaries) > 0
}
