package hexword

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Lexer splits hex word text into raw word tokens.
// It is not safe for concurrent use.
type Lexer struct {
	r    *bufio.Reader
	line int
	col  int
	// positions of the bytes returned by the last ReadWord
	word [WordLen]position
}

type position struct {
	line, col int
}

// NewLexer wraps r in a bufio.Reader unless it already is one.
func NewLexer(r io.Reader) *Lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lexer{r: br, line: 1}
}

// Pos returns the 1-based line and column of the next unread byte.
func (l *Lexer) Pos() (line, col int) {
	return l.line, l.col + 1
}

// SkipInsignificant discards whitespace, comments and an optional "0x"
// prefix, leaving the lexer at the first digit of the next word or at end of
// input.
func (l *Lexer) SkipInsignificant() error {
	for {
		c, err := l.peek()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case c == '\n' || c == ' ' || c == '\t':
			if _, err := l.next(); err != nil {
				return err
			}
		case c == '#':
			if err := l.skipComment(); err != nil {
				return err
			}
		case c == '0':
			return l.skipPrefix()
		case isHexDigit(c):
			return nil
		default:
			line, col := l.Pos()
			return &CharError{Char: c, Line: line, Col: col, Reason: "unexpected character"}
		}
	}
}

// ReadWord returns the next raw word token. An empty token with a nil error
// means there are no more words.
func (l *Lexer) ReadWord() (string, error) {
	if _, err := l.peek(); err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}

	line, col := l.Pos()
	var word [WordLen]byte
	for i := range word {
		l.word[i].line, l.word[i].col = l.Pos()
		c, err := l.next()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: reached end of input while reading a word at %d:%d (%d of %d characters)",
				ErrTruncatedInput, line, col, i, WordLen)
		}
		if err != nil {
			return "", err
		}
		word[i] = c
	}
	return string(word[:]), nil
}

// WordPos returns the line and column of byte i of the last word read.
func (l *Lexer) WordPos(i int) (line, col int) {
	p := l.word[i]
	return p.line, p.col
}

// skipComment consumes from '#' through the next newline or end of input.
func (l *Lexer) skipComment() error {
	for {
		c, err := l.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

// skipPrefix handles a '0': either the first digit of a word or the start of
// a "0x" prefix.
func (l *Lexer) skipPrefix() error {
	line, col := l.Pos()
	la, err := l.r.Peek(2)
	if len(la) < 2 {
		if err == nil || errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: end of input after prefix token at %d:%d", ErrTruncatedInput, line, col)
		}
		return err
	}

	switch c := la[1]; {
	case isHexDigit(c):
		return nil
	case c == 'x':
		if _, err := l.next(); err != nil {
			return err
		}
		_, err := l.next()
		return err
	default:
		return &CharError{Char: c, Line: line, Col: col + 1, Reason: "invalid character after prefix token"}
	}
}

func (l *Lexer) peek() (byte, error) {
	b, err := l.r.Peek(1)
	if len(b) == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return b[0], nil
}

func (l *Lexer) next() (byte, error) {
	c, err := l.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return c, nil
}
