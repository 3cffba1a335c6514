package hexword

import (
	"fmt"
	"io"
)

// Decode reads every word in r and returns the resulting nibble buffer.
// The first lexing or decoding error aborts the whole run.
func Decode(r io.Reader) (Nibbles, error) {
	lex := NewLexer(r)
	buf := Nibbles{}
	for {
		if err := lex.SkipInsignificant(); err != nil {
			return nil, err
		}
		word, err := lex.ReadWord()
		if err != nil {
			return nil, err
		}
		if word == "" {
			return buf, nil
		}
		buf, err = decodeWordAt(buf, word, lex.WordPos)
		if err != nil {
			return nil, err
		}
	}
}

// DecodeWord appends the nibbles of token to buf, last digit first.
// An empty token is the end-of-input sentinel and leaves buf untouched.
func DecodeWord(buf Nibbles, token string) (Nibbles, error) {
	return decodeWordAt(buf, token, nil)
}

// decodeWordAt is DecodeWord with an optional source position lookup for
// each byte of token.
func decodeWordAt(buf Nibbles, token string, pos func(i int) (line, col int)) (Nibbles, error) {
	if token == "" {
		return buf, nil
	}
	if len(token) != WordLen {
		return buf, fmt.Errorf("%w: got %d characters, want %d", ErrMalformedToken, len(token), WordLen)
	}

	var word [WordLen]byte
	for i := WordLen - 1; i >= 0; i-- {
		v, ok := nibbleValue(token[i])
		if !ok {
			ce := &CharError{Char: token[i], Reason: "not a hex digit"}
			if pos != nil {
				ce.Line, ce.Col = pos(i)
			}
			return buf, ce
		}
		word[WordLen-1-i] = v
	}
	return append(buf, word[:]...), nil
}
