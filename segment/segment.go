/*
Package segment is about splitting text into words and non-words.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

For strings already in memory, Tokenize returns all the tokens in one go:

  for _, token := range segment.Tokenize("Hello, World!") {
    // token.Text is one of "Hello", ", ", "World", "!"
  }

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the segments of a file.
Clients are able to get the bytes of the segment by calling Bytes() or Text(),
and the class of the segment by calling Class().

  segmenter := segment.NewSegmenter()
  segmenter.Init(file)
  for segmenter.Next() {
    if segmenter.Class() == segment.Word {
      // do something with segmenter.Text() or segmenter.Bytes()
    }
  }

How it works

A word is a maximal run of letters and combining marks. Everything in
between, whitespace, punctuation, digits, symbols, is a non-word.
Invalid UTF-8 bytes always belong to a non-word.
Segments are never empty, and concatenating all segments reproduces the
input byte by byte. Tokenize returns maximal segments. A Segmenter does so
as well, except for non-words exceeding its buffer, which are delivered in
chunks of consecutive non-word segments. */
package segment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// TokenClass tells words from non-words.
type TokenClass int8

// Classes of tokens.
const (
	NonWord TokenClass = iota
	Word
)

func (c TokenClass) String() string {
	switch c {
	case NonWord:
		return "NON_WORD"
	case Word:
		return "WORD"
	}
	return fmt.Sprintf("TokenClass(%d)", int8(c))
}

// Token is a span of text, classified as word or non-word.
type Token struct {
	Text  string
	Class TokenClass
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Class, t.Text)
}

// IsWordRune is true for letters and combining marks.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.M, r)
}

func classOf(r rune) TokenClass {
	if IsWordRune(r) {
		return Word
	}
	return NonWord
}

// Tokenize splits text into maximal runs of words and non-words.
// Concatenating the text of all tokens reproduces the input exactly, including
// invalid UTF-8 sequences, which are always part of a non-word.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	tokens := make([]Token, 0, 8)
	start := 0
	r, _ := utf8.DecodeRuneInString(text)
	class := classOf(r)
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if c := classOf(r); c != class {
			tokens = append(tokens, Token{Text: text[start:pos], Class: class})
			start, class = pos, c
		}
		pos += size
	}
	tokens = append(tokens, Token{Text: text[start:], Class: class})
	CT().Debugf("tokenized text into %d token(s)", len(tokens))
	return tokens
}

// --- Segmenter -------------------------------------------------------------

// A Segmenter reads bytes from an io.Reader and segments them into words
// and non-words.
type Segmenter struct {
	scanner       *bufio.Scanner // splits the input by scanSegment
	buf           []byte         // initial buffer for the scanner
	maxSegmentLen int            // maximum length allowed for segments
	activeSegment []byte         // the most recent segment
	activeClass   TokenClass     // class of the most recent segment
	splitClass    TokenClass     // class of the segment last split off
	pos           int64          // end of the most recent segment
	err           error
	inUse         bool // Next() has been called; buffer is in use.
}

// MaxSegmentSize is the maximum size used to buffer a segment
// unless the user provides an explicit buffer with Segmenter.Buffer().
const MaxSegmentSize = 64 * 1024
const startBufSize = 4096 // Size of initial allocation for buffer.

// ErrTooLong flags a word not fitting into the buffer.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("segmenter: segment too long for buffer")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a reader.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Init initializes a Segmenter with an io.Reader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initializes a segmenter already in use.
func (s *Segmenter) Init(reader io.Reader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	if s.buf == nil {
		s.buf = make([]byte, 0, startBufSize)
		s.maxSegmentLen = MaxSegmentSize
	}
	s.scanner = bufio.NewScanner(reader)
	s.scanner.Buffer(s.buf, s.maxSegmentLen)
	s.scanner.Split(s.scanSegment)
	s.activeSegment = nil
	s.inUse = false
	s.err = nil
	s.pos = 0
}

// Buffer sets the initial buffer to use when scanning and the maximum size of
// buffer that may be allocated during segmenting. Words must fit into the
// buffer, longer non-words are split.
//
// By default, Segmenter uses an internal buffer and sets the maximum token size
// to MaxSegmentSize.
//
// Buffer panics if it is called after scanning has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.buf = buf[:0]
	s.maxSegmentLen = max
	if cap(buf) > max {
		s.maxSegmentLen = cap(buf)
	}
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Next advances the Segmenter to the next segment, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
// For the latter case Err() will return nil.
func (s *Segmenter) Next() bool {
	if s.scanner == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	s.activeSegment = nil
	if s.err != nil {
		return false
	}
	if !s.scanner.Scan() {
		switch err := s.scanner.Err(); err {
		case nil:
			s.setErr(io.EOF)
		case bufio.ErrTooLong:
			s.setErr(ErrTooLong)
		default:
			CT().Errorf("read error: %s", err)
			s.setErr(err)
		}
		return false
	}
	s.activeSegment = s.scanner.Bytes()
	s.activeClass = s.splitClass
	s.pos += int64(len(s.activeSegment))
	CT().P("class", s.activeClass).Debugf("Next() = %q", s.activeSegment)
	return true
}

// scanSegment is a bufio.SplitFunc. It splits off a run of runes of equal
// class from data. Invalid UTF-8 is decoded as utf8.RuneError of size 1,
// which is a non-word rune. A non-word run filling the whole buffer is
// split off as it is, while a word run filling it results in bufio.ErrTooLong.
func (s *Segmenter) scanSegment(data []byte, atEOF bool) (int, []byte, error) {
	if len(data) == 0 || !atEOF && !utf8.FullRune(data) {
		return 0, nil, nil
	}
	r, size := utf8.DecodeRune(data)
	class := classOf(r)
	i := size
	for i < len(data) {
		if !atEOF && !utf8.FullRune(data[i:]) {
			break
		}
		r, size = utf8.DecodeRune(data[i:])
		if classOf(r) != class {
			s.splitClass = class
			return i, data[:i], nil
		}
		i += size
	}
	if atEOF || class == NonWord && len(data) >= s.maxSegmentLen {
		s.splitClass = class
		return i, data[:i], nil
	}
	return 0, nil, nil
}

// Bytes returns the most recent token generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// Class returns the class of the most recent segment.
func (s *Segmenter) Class() TokenClass {
	return s.activeClass
}

// Token returns the most recent segment as a Token.
func (s *Segmenter) Token() Token {
	return Token{Text: s.Text(), Class: s.activeClass}
}

// Position returns the byte offset of the end of the most recent segment.
func (s *Segmenter) Position() int64 {
	return s.pos
}
