package syllabreak

// Lang selects the language rule to use for a text. It is either Auto,
// i.e. the language is detected from the text, or an explicit language code.
type Lang struct {
	code     string
	explicit bool
}

// Auto lets the language be detected from the text to process.
var Auto = Lang{}

// Explicit selects the rule for a language code, e.g. "eng" or "srp-latn".
// An explicit code is never detected: a code without a rule, "" included,
// is reported as unsupported.
func Explicit(code string) Lang {
	return Lang{code: code, explicit: true}
}

// IsAuto is true if the language is to be detected.
func (l Lang) IsAuto() bool {
	return !l.explicit
}

// Code returns the language code, or "" for Auto.
func (l Lang) Code() string {
	return l.code
}

func (l Lang) String() string {
	if l.IsAuto() {
		return "auto"
	}
	return l.code
}
