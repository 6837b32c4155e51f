package syllabreak

import (
	"bufio"
	"io"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/syllabreak/ruleconf"
	"github.com/npillmayer/syllabreak/rules"
	"github.com/npillmayer/syllabreak/segment"
	"github.com/npillmayer/syllabreak/syllable"
)

// Syllabreak syllabifies text and detects languages, using a fixed set of
// language rules. A Syllabreak is safe for concurrent use.
type Syllabreak struct {
	rs           *rules.RuleSet
	sep          string
	cacheSize    int
	syllabifiers map[string]*syllable.Syllabifier
	cache        *lru.Cache[cacheKey, string] // may be nil
}

type cacheKey struct {
	lang, word string
}

// Option configures a Syllabreak.
type Option func(*Syllabreak)

// WithSeparator sets the marker to insert at syllable boundaries.
// The default is DefaultSeparator.
func WithSeparator(sep string) Option {
	return func(sb *Syllabreak) {
		sb.sep = sep
	}
}

// WithCacheSize sets the number of syllabified words to remember. A size
// of 0 or less switches caching off.
func WithCacheSize(size int) Option {
	return func(sb *Syllabreak) {
		sb.cacheSize = size
	}
}

// New creates a Syllabreak for a rule set. A nil rule set is treated as an
// empty one: no language is ever detected and text is never changed.
func New(rs *rules.RuleSet, opts ...Option) *Syllabreak {
	if rs == nil {
		rs, _ = rules.Build()
	}
	sb := &Syllabreak{
		rs:        rs,
		sep:       DefaultSeparator,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(sb)
	}
	sb.syllabifiers = make(map[string]*syllable.Syllabifier, rs.Len())
	for _, rule := range rs.Rules() {
		sb.syllabifiers[rule.Lang()] = syllable.NewSyllabifier(rule, sb.sep)
	}
	if sb.cacheSize > 0 {
		var err error
		if sb.cache, err = lru.New[cacheKey, string](sb.cacheSize); err != nil {
			CT().Errorf("word cache disabled: %v", err)
			sb.cache = nil
		}
	}
	CT().Debugf("syllabreak for languages %v, separator %q", rs.Codes(), sb.sep)
	return sb
}

// NewDefault creates a Syllabreak for the rule set embedded into package
// ruleconf.
func NewDefault(opts ...Option) (*Syllabreak, error) {
	rs, err := ruleconf.Default()
	if err != nil {
		return nil, err
	}
	return New(rs, opts...), nil
}

// RuleSet returns the rules sb is working with.
func (sb *Syllabreak) RuleSet() *rules.RuleSet {
	return sb.rs
}

// Languages returns the codes of all configured languages, in order of
// detection priority.
func (sb *Syllabreak) Languages() []string {
	return sb.rs.Codes()
}

// Separator returns the marker inserted at syllable boundaries.
func (sb *Syllabreak) Separator() string {
	return sb.sep
}

// DetectLanguage returns the codes of all languages matching text, best
// match first. If no language matches, an empty slice is returned.
func (sb *Syllabreak) DetectLanguage(text string) []string {
	return sb.rs.DetectLanguage(text)
}

// Syllabify inserts the separator at every syllable boundary of every word
// in text. Everything but words is copied unchanged.
//
// For lang = Auto the language is detected from the whole text; if no
// language matches, text is returned unchanged. For an explicit language
// without a rule, an *UnsupportedLanguageError is returned.
func (sb *Syllabreak) Syllabify(text string, lang Lang) (string, error) {
	s, err := sb.resolve(text, lang)
	if err != nil || s == nil || text == "" {
		return text, err
	}
	var out strings.Builder
	out.Grow(len(text) + len(text)/4)
	for _, token := range segment.Tokenize(text) {
		if token.Class == segment.Word {
			out.WriteString(sb.word(s, token.Text))
		} else {
			out.WriteString(token.Text)
		}
	}
	return out.String(), nil
}

// Syllables splits a single word into syllables. For lang = Auto the
// language is detected from the word; if no language matches, the word is
// returned as a single syllable.
func (sb *Syllabreak) Syllables(word string, lang Lang) ([]string, error) {
	s, err := sb.resolve(word, lang)
	if err != nil {
		return nil, err
	}
	if s == nil {
		if word == "" {
			return []string{}, nil
		}
		return []string{word}, nil
	}
	return s.Syllables(word), nil
}

// SyllabifyStream reads text from r and writes it to w, with separators
// inserted into words. Text is processed word by word, without reading the
// input as a whole. For lang = Auto the language is therefore detected for
// every word separately.
//
// Bytes outside of words, invalid UTF-8 included, are copied unchanged.
// A single word longer than segment.MaxSegmentSize results in
// segment.ErrTooLong; output produced up to this point is flushed to w.
func (sb *Syllabreak) SyllabifyStream(w io.Writer, r io.Reader, lang Lang) error {
	var s *syllable.Syllabifier
	if !lang.IsAuto() {
		var err error
		if s, err = sb.resolve("", lang); err != nil {
			return err
		}
	}
	bw := bufio.NewWriter(w)
	seg := segment.NewSegmenter()
	seg.Init(r)
	err := sb.stream(bw, seg, s)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (sb *Syllabreak) stream(bw *bufio.Writer, seg *segment.Segmenter, s *syllable.Syllabifier) error {
	for seg.Next() {
		if seg.Class() != segment.Word {
			if _, err := bw.Write(seg.Bytes()); err != nil {
				return err
			}
			continue
		}
		word, ws := seg.Text(), s
		if ws == nil {
			ws, _ = sb.resolve(word, Auto)
		}
		if ws != nil {
			word = sb.word(ws, word)
		}
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
	}
	return seg.Err()
}

// resolve finds the syllabifier to use for text. It returns nil (and no
// error) if lang is Auto and no language matches text.
func (sb *Syllabreak) resolve(text string, lang Lang) (*syllable.Syllabifier, error) {
	if !lang.IsAuto() {
		s, ok := sb.syllabifiers[lang.Code()]
		if !ok {
			return nil, &UnsupportedLanguageError{Code: lang.Code()}
		}
		return s, nil
	}
	matches := sb.rs.FindMatches(text)
	if len(matches) == 0 {
		CT().Debugf("no language detected for %q", text)
		return nil, nil
	}
	return sb.syllabifiers[matches[0].Lang()], nil
}

func (sb *Syllabreak) word(s *syllable.Syllabifier, word string) string {
	if sb.cache == nil {
		return s.Word(word)
	}
	key := cacheKey{lang: s.Rule().Lang(), word: word}
	if out, ok := sb.cache.Get(key); ok {
		return out
	}
	out := s.Word(word)
	sb.cache.Add(key, out)
	return out
}
