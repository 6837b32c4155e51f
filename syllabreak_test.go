package syllabreak

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/syllabreak/rules"
	"github.com/npillmayer/syllabreak/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type syllabifyCases struct {
	Tests []struct {
		Section string `yaml:"section"`
		Lang    string `yaml:"lang"`
		Cases   []struct {
			Text string `yaml:"text"`
			Want string `yaml:"want"`
		} `yaml:"cases"`
	} `yaml:"tests"`
}

type detectCases struct {
	Tests []struct {
		Lang  string   `yaml:"lang"`
		Cases []string `yaml:"cases"`
	} `yaml:"tests"`
}

func readCases(t *testing.T, path string, v interface{}) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, yaml.NewDecoder(f).Decode(v))
}

func newDefault(t *testing.T, opts ...Option) *Syllabreak {
	t.Helper()
	sb, err := NewDefault(opts...)
	require.NoError(t, err)
	return sb
}

func TestSyllabify(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var data syllabifyCases
	readCases(t, "testdata/syllabify_tests.yaml", &data)
	sb := newDefault(t, WithSeparator("-"))
	n := 0
	for _, section := range data.Tests {
		for _, c := range section.Cases {
			lang := Auto
			if section.Lang != "" {
				lang = Explicit(section.Lang)
			}
			out, err := sb.Syllabify(c.Text, lang)
			if assert.NoError(t, err, "[%s] %q", section.Section, c.Text) {
				assert.Equal(t, c.Want, out, "[%s] %q", section.Section, c.Text)
			}
			n++
		}
	}
	t.Logf("%d syllabification cases", n)
}

func TestDetectLanguage(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var data detectCases
	readCases(t, "testdata/detect_language_tests.yaml", &data)
	sb := newDefault(t)
	for _, section := range data.Tests {
		for _, text := range section.Cases {
			langs := sb.DetectLanguage(text)
			if section.Lang == "" {
				assert.Empty(t, langs, "expected no language for %q", text)
			} else {
				assert.Contains(t, langs, section.Lang, "languages for %q", text)
			}
		}
	}
	assert.Equal(t, []string{"eng", "rus", "ukr", "srp-cyrl", "srp-latn", "ron", "deu", "tur"},
		sb.Languages())
	assert.NotNil(t, sb.DetectLanguage(""))
}

func TestUnsupportedLanguage(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sb := newDefault(t)
	_, err := sb.Syllabify("x", Explicit("xyz"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
	var uerr *UnsupportedLanguageError
	if assert.True(t, errors.As(err, &uerr)) {
		assert.Equal(t, "xyz", uerr.Code)
	}
	_, err = sb.Syllables("hello", Explicit("xyz"))
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
	err = sb.SyllabifyStream(&strings.Builder{}, strings.NewReader("hello"), Explicit("xyz"))
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
	//
	for _, text := range []string{"", " ", "hello"} {
		_, err = sb.Syllabify(text, Explicit("xyz"))
		assert.True(t, errors.Is(err, ErrUnsupportedLanguage), "xyz for %q", text)
		out, err := sb.Syllabify(text, Explicit(""))
		assert.True(t, errors.Is(err, ErrUnsupportedLanguage), "empty code for %q", text)
		assert.Equal(t, text, out)
	}
	_, err = sb.Syllables("hello", Explicit(""))
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
	err = sb.SyllabifyStream(&strings.Builder{}, strings.NewReader("hello"), Explicit(""))
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
}

func TestEmptyRuleSet(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, sb := range []*Syllabreak{New(nil), New(mustBuild(t))} {
		assert.Empty(t, sb.DetectLanguage("hello"))
		assert.Empty(t, sb.Languages())
		out, err := sb.Syllabify("hello world", Auto)
		assert.NoError(t, err)
		assert.Equal(t, "hello world", out)
		_, err = sb.Syllabify("hello", Explicit("eng"))
		assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
	}
}

func mustBuild(t *testing.T, list ...*rules.LanguageRule) *rules.RuleSet {
	t.Helper()
	rs, err := rules.Build(list...)
	require.NoError(t, err)
	return rs
}

func TestLetterFreeText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sb := newDefault(t, WithSeparator("-"))
	for _, text := range []string{"", " ", "1234 !?", "-- 42 --", "\t\n"} {
		for _, lang := range []Lang{Auto, Explicit("eng"), Explicit("rus")} {
			out, err := sb.Syllabify(text, lang)
			assert.NoError(t, err)
			assert.Equal(t, text, out, "language %v", lang)
		}
	}
}

func TestSeparatorDoesNotMatter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	text := "Hello, this extraordinary problem is central to молоко"
	soft, err := newDefault(t).Syllabify(text, Auto)
	require.NoError(t, err)
	pipe, err := newDefault(t, WithSeparator("|")).Syllabify(text, Auto)
	require.NoError(t, err)
	assert.Equal(t, strings.ReplaceAll(soft, DefaultSeparator, "|"), pipe)
	assert.Equal(t, text, strings.ReplaceAll(pipe, "|", ""))
}

func TestCache(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cached := newDefault(t, WithSeparator("-"), WithCacheSize(2))
	uncached := newDefault(t, WithSeparator("-"), WithCacheSize(0))
	assert.Nil(t, uncached.cache)
	text := "hello problem hello water problem central hello"
	for i := 0; i < 3; i++ {
		a, err := cached.Syllabify(text, Explicit("eng"))
		require.NoError(t, err)
		b, err := uncached.Syllabify(text, Explicit("eng"))
		require.NoError(t, err)
		assert.Equal(t, "hel-lo pro-blem hel-lo wa-ter pro-blem cen-tral hel-lo", a)
		assert.Equal(t, a, b)
	}
	assert.LessOrEqual(t, cached.cache.Len(), 2)
}

func TestSyllables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sb := newDefault(t)
	s, err := sb.Syllables("problem", Auto)
	require.NoError(t, err)
	assert.Equal(t, []string{"pro", "blem"}, s)
	s, err = sb.Syllables("молоко", Explicit("rus"))
	require.NoError(t, err)
	assert.Equal(t, []string{"мо", "ло", "ко"}, s)
	s, err = sb.Syllables("1234", Auto)
	require.NoError(t, err)
	assert.Equal(t, []string{"1234"}, s)
	s, err = sb.Syllables("", Auto)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestSyllabifyStream(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sb := newDefault(t, WithSeparator("-"))
	var out strings.Builder
	err := sb.SyllabifyStream(&out, strings.NewReader("hello, problem!\n"), Explicit("eng"))
	require.NoError(t, err)
	assert.Equal(t, "hel-lo, pro-blem!\n", out.String())
	//
	out.Reset()
	err = sb.SyllabifyStream(&out, strings.NewReader("hello привет 42"), Auto)
	require.NoError(t, err)
	assert.Equal(t, "hel-lo при-вет 42", out.String())
}

func TestSyllabifyStreamInvalidUTF8(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sb := newDefault(t, WithSeparator("-"))
	input := "hello\xff world \xe2\x80problem\xc3"
	for _, lang := range []Lang{Explicit("eng"), Auto} {
		var out strings.Builder
		err := sb.SyllabifyStream(&out, strings.NewReader(input), lang)
		require.NoError(t, err)
		assert.Equal(t, "hel-lo\xff world \xe2\x80pro-blem\xc3", out.String(), "lang %v", lang)
		whole, err := sb.Syllabify(input, lang)
		require.NoError(t, err)
		assert.Equal(t, whole, out.String(), "lang %v", lang)
	}
}

func TestSyllabifyStreamLongNonWord(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sb := newDefault(t, WithSeparator("-"))
	spaces := strings.Repeat(" ", 70000)
	for _, lang := range []Lang{Explicit("eng"), Auto} {
		var out strings.Builder
		err := sb.SyllabifyStream(&out, strings.NewReader("hello"+spaces+"problem"), lang)
		require.NoError(t, err, "lang %v", lang)
		assert.Equal(t, "hel-lo"+spaces+"pro-blem", out.String(), "lang %v", lang)
	}
}

func TestSyllabifyStreamFlushesOnError(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sb := newDefault(t, WithSeparator("-"))
	var out strings.Builder
	input := "hello " + strings.Repeat("a", segment.MaxSegmentSize+10)
	err := sb.SyllabifyStream(&out, strings.NewReader(input), Explicit("eng"))
	assert.True(t, errors.Is(err, segment.ErrTooLong))
	assert.Equal(t, "hel-lo ", out.String())
}

func TestLangForLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sb := newDefault(t)
	for locale, expected := range map[string]Lang{
		"en-US":      Explicit("eng"),
		"de-AT":      Explicit("deu"),
		"ru":         Explicit("rus"),
		"sr-Latn-RS": Explicit("srp-latn"),
		"sr-Cyrl":    Explicit("srp-cyrl"),
		"ro-RO":      Explicit("ron"),
		"ja-JP":      Auto,
		"#?!":        Auto,
	} {
		assert.Equal(t, expected, sb.LangForLocale(locale), "locale %q", locale)
	}
	assert.Equal(t, Auto, New(nil).LangForLocale("en-US"))
}

func TestEnvironmentLang(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	lang := newDefault(t).EnvironmentLang()
	t.Logf("user environment has language %v", lang)
}

func TestLang(t *testing.T) {
	assert.True(t, Auto.IsAuto())
	assert.False(t, Explicit("").IsAuto())
	assert.NotEqual(t, Auto, Explicit(""))
	assert.Equal(t, "", Auto.Code())
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "eng", Explicit("eng").String())
	assert.Equal(t, "eng", Explicit("eng").Code())
}
