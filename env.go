package syllabreak

import (
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// EnvironmentLang returns the language of the user's locale, if there is a
// rule for it. Otherwise Auto is returned.
func (sb *Syllabreak) EnvironmentLang() Lang {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		CT().Infof("cannot detect user locale: %v", err)
		return Auto
	}
	CT().Infof("detected user locale %v", userLocale)
	return sb.LangForLocale(userLocale)
}

// LangForLocale maps an IETF locale, e.g. "en-US" or "sr-Latn-RS", to a
// configured language. Rules are named by ISO 639-3 language codes,
// optionally followed by a lowercase ISO 15924 script code ("srp-latn").
// If no rule matches the locale, Auto is returned.
func (sb *Syllabreak) LangForLocale(locale string) Lang {
	tag, err := language.Parse(locale)
	if err != nil {
		CT().Debugf("cannot parse locale %q: %v", locale, err)
		return Auto
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return Auto
	}
	iso3 := base.ISO3()
	script, _ := tag.Script()
	for _, code := range []string{
		iso3 + "-" + strings.ToLower(script.String()),
		iso3,
	} {
		if _, ok := sb.rs.Rule(code); ok {
			return Explicit(code)
		}
	}
	return Auto
}
