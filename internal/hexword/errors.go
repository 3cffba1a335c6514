package hexword

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("hexword: file not found")
	ErrMalformedToken   = errors.New("hexword: malformed word token")
	ErrInvalidCharacter = errors.New("hexword: invalid character")
	ErrTruncatedInput   = errors.New("hexword: truncated input")
	ErrUnpackableBuffer = errors.New("hexword: unpackable nibble buffer")
)

// CharError reports a character outside the word grammar.
// Line and Col are 1-based; zero means the position is unknown.
type CharError struct {
	Char   byte
	Line   int
	Col    int
	Reason string
}

func (e *CharError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v %q (code %d)", ErrInvalidCharacter, rune(e.Char), e.Char)
	if e.Line > 0 {
		fmt.Fprintf(&b, " at %d:%d", e.Line, e.Col)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

func (e *CharError) Unwrap() error {
	return ErrInvalidCharacter
}

// ErrorKind maps err onto a short stable label for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, ErrInvalidCharacter):
		return "invalid_character"
	case errors.Is(err, ErrTruncatedInput):
		return "truncated_input"
	case errors.Is(err, ErrUnpackableBuffer):
		return "unpackable_buffer"
	default:
		return "io"
	}
}
