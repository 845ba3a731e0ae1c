package rrsched

import (
	"iter"
	"math"
)

// Lexer pulls unsigned integers out of a byte buffer. Anything that is not
// an ASCII digit separates numbers.
type Lexer struct {
	data []byte
	pos  int
}

func NewLexer(data []byte) *Lexer {
	return &Lexer{data: data}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Next returns the next run of digits. A number cut off by the end of the
// buffer is still returned; only a missing number is an error.
func (lx *Lexer) Next() (uint32, error) {
	for lx.pos < len(lx.data) && !isDigit(lx.data[lx.pos]) {
		lx.pos += 1
	}
	if lx.pos == len(lx.data) {
		return 0, &LexError{Kind: EndOfInput, Offset: lx.pos}
	}

	start := lx.pos
	current := uint64(0)
	for lx.pos < len(lx.data) && isDigit(lx.data[lx.pos]) {
		current = current*10 + uint64(lx.data[lx.pos]-'0')
		if current > math.MaxUint32 {
			return 0, &LexError{Kind: Overflow, Offset: start}
		}
		lx.pos += 1
	}
	return uint32(current), nil
}

func (lx *Lexer) Reset() {
	lx.pos = 0
}

// Offset is the number of bytes consumed so far.
func (lx *Lexer) Offset() int {
	return lx.pos
}

// Ints yields every integer in the buffer from a fresh cursor. It stops at
// the end of the data or at the first overflow.
func (lx *Lexer) Ints() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		cur := NewLexer(lx.data)
		for {
			v, err := cur.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// ParseUint parses a string that must consist of digits only.
func ParseUint(s string) (uint32, error) {
	if len(s) == 0 {
		return 0, &LexError{Kind: EndOfInput}
	}
	current := uint64(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) {
			return 0, &LexError{Kind: InvalidCharacter, Offset: i, Char: c}
		}
		current = current*10 + uint64(c-'0')
		if current > math.MaxUint32 {
			return 0, &LexError{Kind: Overflow}
		}
	}
	return uint32(current), nil
}
