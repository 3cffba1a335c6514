package hexword

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func decodeString(t *testing.T, src string) (Nibbles, error) {
	t.Helper()
	return Decode(strings.NewReader(src))
}

func TestDecodeEncodeConcreteWord(t *testing.T) {
	buf, err := decodeString(t, "12345678")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Nibbles{8, 7, 6, 5, 4, 3, 2, 1}
	if !bytes.Equal(buf, want) {
		t.Fatalf("nibbles mismatch: got %v want %v", buf, want)
	}

	out, err := Encode(buf)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(out, []byte{0x78, 0x56, 0x34, 0x12}) {
		t.Fatalf("bytes mismatch: % x", out)
	}
}

func TestDecodePrefixTolerance(t *testing.T) {
	want := Nibbles{10, 0, 0, 0, 0, 0, 0, 0}
	for _, src := range []string{"0x0000000a", "0000000a", "  0x0000000a\n"} {
		buf, err := decodeString(t, src)
		if err != nil {
			t.Fatalf("decode %q: %v", src, err)
		}
		if !bytes.Equal(buf, want) {
			t.Fatalf("decode %q: got %v want %v", src, buf, want)
		}
		out, err := Encode(buf)
		if err != nil {
			t.Fatalf("encode %q: %v", src, err)
		}
		if !bytes.Equal(out, []byte{0x0a, 0x00, 0x00, 0x00}) {
			t.Fatalf("encode %q: % x", src, out)
		}
	}
}

func TestDecodeCommentStripping(t *testing.T) {
	plain, err := decodeString(t, "12345678")
	if err != nil {
		t.Fatalf("decode plain: %v", err)
	}
	commented, err := decodeString(t, "# this is ignored\n12345678")
	if err != nil {
		t.Fatalf("decode commented: %v", err)
	}
	if !bytes.Equal(plain, commented) {
		t.Fatalf("comment changed result: %v vs %v", plain, commented)
	}
}

func TestDecodeEmptyInputs(t *testing.T) {
	for _, src := range []string{"", "\n\n", " \t\n", "# only a comment", "# a\n# b\n\t\n", "0x", "# prefix only\n0x"} {
		buf, err := decodeString(t, src)
		if err != nil {
			t.Fatalf("decode %q: %v", src, err)
		}
		if len(buf) != 0 {
			t.Fatalf("decode %q: expected empty buffer, got %v", src, buf)
		}
		out, err := Encode(buf)
		if err != nil {
			t.Fatalf("encode %q: %v", src, err)
		}
		if len(out) != 0 {
			t.Fatalf("encode %q: expected no bytes, got % x", src, out)
		}
	}
}

func TestDecodeMultipleWordsMixedLayout(t *testing.T) {
	src := "# program\n0x12345678 deadbeef\t# trailing\n00000001\n0xcafef00d # no newline"
	buf, err := decodeString(t, src)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if buf.Words() != 4 {
		t.Fatalf("expected 4 words, got %d", buf.Words())
	}
	out, err := Encode(buf)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{
		0x78, 0x56, 0x34, 0x12,
		0xef, 0xbe, 0xad, 0xde,
		0x01, 0x00, 0x00, 0x00,
		0x0d, 0xf0, 0xfe, 0xca,
	}
	if !bytes.Equal(out, want) {
		t.Fatalf("bytes mismatch:\n got % x\nwant % x", out, want)
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	src := "0x89abcdef\n01234567\n"
	first, err := decodeString(t, src)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	a, err := Encode(first)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := decodeString(t, src)
	if err != nil {
		t.Fatalf("decode again: %v", err)
	}
	b, err := Encode(second)
	if err != nil {
		t.Fatalf("encode again: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("non-deterministic output: % x vs % x", a, b)
	}
}

func TestDecodeTruncatedWord(t *testing.T) {
	for _, src := range []string{"1234567", "123456789", "12345678\n0x1234"} {
		_, err := decodeString(t, src)
		if !errors.Is(err, ErrTruncatedInput) {
			t.Fatalf("decode %q: expected ErrTruncatedInput, got %v", src, err)
		}
	}
}

func TestDecodeBarePrefixAtEndOfInput(t *testing.T) {
	_, err := decodeString(t, "12345678 0")
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestDecodeInvalidCharacters(t *testing.T) {
	tests := []struct {
		src  string
		char byte
		line int
		col  int
	}{
		{src: "g", char: 'g', line: 1, col: 1},
		{src: "12345678\n  zz", char: 'z', line: 2, col: 3},
		{src: "0y12345678", char: 'y', line: 1, col: 2},
		{src: "0\n", char: '\n', line: 1, col: 2},
		{src: "ABCDEF01", char: 'A', line: 1, col: 1},
		{src: "1234g678", char: 'g', line: 1, col: 5},
		{src: "0x1234567G", char: 'G', line: 1, col: 10},
		{src: "1234\t678", char: '\t', line: 1, col: 5},
		{src: "12\n45g78", char: 'g', line: 2, col: 3},
		{src: "# c\n0x12\n45z78", char: 'z', line: 3, col: 3},
	}
	for _, tc := range tests {
		_, err := decodeString(t, tc.src)
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("decode %q: expected ErrInvalidCharacter, got %v", tc.src, err)
		}
		var ce *CharError
		if !errors.As(err, &ce) {
			t.Fatalf("decode %q: expected *CharError, got %T", tc.src, err)
		}
		if ce.Char != tc.char {
			t.Fatalf("decode %q: char got %q want %q", tc.src, ce.Char, tc.char)
		}
		if ce.Line != tc.line || ce.Col != tc.col {
			t.Fatalf("decode %q: position got %d:%d want %d:%d", tc.src, ce.Line, ce.Col, tc.line, tc.col)
		}
	}
}

func TestDecodeWordSentinelAndLength(t *testing.T) {
	buf := Nibbles{1, 2}
	got, err := DecodeWord(buf, "")
	if err != nil {
		t.Fatalf("empty token: %v", err)
	}
	if !bytes.Equal(got, buf) {
		t.Fatalf("empty token changed buffer: %v", got)
	}

	for _, token := range []string{"1234567", "123456789", "1"} {
		_, err := DecodeWord(nil, token)
		if !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("token %q: expected ErrMalformedToken, got %v", token, err)
		}
	}
}

func TestDecodeWordReversesDigits(t *testing.T) {
	got, err := DecodeWord(Nibbles{15}, "0123abcd")
	if err != nil {
		t.Fatalf("decode word: %v", err)
	}
	want := Nibbles{15, 13, 12, 11, 10, 3, 2, 1, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDecodeWordInvalidCharHasNoPosition(t *testing.T) {
	_, err := DecodeWord(nil, "1234567x")
	var ce *CharError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CharError, got %v", err)
	}
	if ce.Char != 'x' || ce.Line != 0 {
		t.Fatalf("unexpected char error: %+v", ce)
	}
	if !strings.Contains(ce.Error(), "code 120") {
		t.Fatalf("expected numeric code in message: %q", ce.Error())
	}
}

func TestEncodeOddBuffer(t *testing.T) {
	out, err := Encode(Nibbles{1, 2, 3})
	if !errors.Is(err, ErrUnpackableBuffer) {
		t.Fatalf("expected ErrUnpackableBuffer, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected no output, got % x", out)
	}

	var w bytes.Buffer
	n, err := EncodeTo(&w, Nibbles{1})
	if !errors.Is(err, ErrUnpackableBuffer) {
		t.Fatalf("expected ErrUnpackableBuffer from EncodeTo, got %v", err)
	}
	if n != 0 || w.Len() != 0 {
		t.Fatalf("expected nothing written, got %d bytes", w.Len())
	}
}

func TestEncodeRejectsOutOfRangeNibble(t *testing.T) {
	_, err := Encode(Nibbles{0x10, 0})
	if !errors.Is(err, ErrUnpackableBuffer) {
		t.Fatalf("expected ErrUnpackableBuffer, got %v", err)
	}
}

func TestEncodePairsLowNibbleFirst(t *testing.T) {
	out, err := Encode(Nibbles{0xa, 0x5, 0x0, 0xf})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(out, []byte{0x5a, 0xf0}) {
		t.Fatalf("got % x", out)
	}

	var w bytes.Buffer
	n, err := EncodeTo(&w, Nibbles{0xa, 0x5})
	if err != nil {
		t.Fatalf("encode to: %v", err)
	}
	if n != 1 || !bytes.Equal(w.Bytes(), []byte{0x5a}) {
		t.Fatalf("encode to wrote % x", w.Bytes())
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{ErrNotFound, "not_found"},
		{ErrMalformedToken, "malformed_token"},
		{&CharError{Char: 'g'}, "invalid_character"},
		{ErrTruncatedInput, "truncated_input"},
		{ErrUnpackableBuffer, "unpackable_buffer"},
		{errors.New("disk on fire"), "io"},
	}
	for _, tc := range tests {
		if got := ErrorKind(tc.err); got != tc.want {
			t.Errorf("ErrorKind(%v) = %q; want %q", tc.err, got, tc.want)
		}
	}
}
