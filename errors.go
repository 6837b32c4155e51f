package syllabreak

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLanguage is matched by UnsupportedLanguageError, i.e.
// errors.Is(err, ErrUnsupportedLanguage) holds for every
// *UnsupportedLanguageError.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// UnsupportedLanguageError is returned if a caller asks for a language
// for which no rule is configured.
type UnsupportedLanguageError struct {
	Code string // the language code asked for
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedLanguage.Error(), e.Code)
}

// Is makes UnsupportedLanguageError match ErrUnsupportedLanguage.
func (e *UnsupportedLanguageError) Is(target error) bool {
	return target == ErrUnsupportedLanguage
}
