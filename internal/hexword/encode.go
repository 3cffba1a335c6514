package hexword

import (
	"fmt"
	"io"
)

// Encode packs consecutive (low, high) nibble pairs into bytes.
func Encode(buf Nibbles) ([]byte, error) {
	if len(buf) == 0 {
		return []byte{}, nil
	}
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("%w: insufficient nibbles to form a complete output byte (have %d)",
			ErrUnpackableBuffer, len(buf))
	}

	out := make([]byte, 0, len(buf)/2)
	for i := 0; i < len(buf); i += 2 {
		low, high := buf[i], buf[i+1]
		if low > 0x0f || high > 0x0f {
			return nil, fmt.Errorf("%w: value out of nibble range at index %d", ErrUnpackableBuffer, i)
		}
		out = append(out, high<<4|low)
	}
	return out, nil
}

// EncodeTo packs buf and writes the bytes to w. Nothing is written when
// packing fails.
func EncodeTo(w io.Writer, buf Nibbles) (int, error) {
	out, err := Encode(buf)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return w.Write(out)
}
