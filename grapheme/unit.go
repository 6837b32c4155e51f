package grapheme

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnitClass is the phonological class of a unit.
type UnitClass int8

// Unit classes
const (
	Other UnitClass = iota
	Vowel
	Consonant
	Separator
)

func (c UnitClass) String() string {
	switch c {
	case Other:
		return "OTHER"
	case Vowel:
		return "VOWEL"
	case Consonant:
		return "CONSONANT"
	case Separator:
		return "SEPARATOR"
	}
	return fmt.Sprintf("UnitClass(%d)", int8(c))
}

// Unit is a phonological unit of a word.
type Unit struct {
	Surface  string    // text of the unit, as found in the word
	Class    UnitClass // vowel, consonant, separator or other
	Glide    bool      // unit is or contains a glide
	Modifier bool      // unit carries an attached modifier
	Start    int       // byte offset of the unit within the word
	End      int       // byte offset after the unit
}

// Lower returns the surface of u in lowercase.
func (u Unit) Lower() string {
	return strings.Map(unicode.ToLower, u.Surface)
}

// FirstLower returns the first character of the unit in lowercase, or 0 for
// an empty unit.
func (u Unit) FirstLower() rune {
	r, size := utf8.DecodeRuneInString(u.Surface)
	if size == 0 {
		return 0
	}
	return unicode.ToLower(r)
}

func (u Unit) String() string {
	return fmt.Sprintf("%s:%s", u.Surface, u.Class)
}

// Units is a sequence of units for a word.
type Units []Unit

// Join concatenates the surfaces of the units in [from…to).
func (us Units) Join(from, to int) string {
	var sb strings.Builder
	for i := from; i < to && i < len(us); i++ {
		sb.WriteString(us[i].Surface)
	}
	return sb.String()
}

// JoinLower concatenates the lowercased surfaces of the units in [from…to).
func (us Units) JoinLower(from, to int) string {
	return strings.Map(unicode.ToLower, us.Join(from, to))
}

// String reproduces the word the units have been created from.
func (us Units) String() string {
	return us.Join(0, len(us))
}
