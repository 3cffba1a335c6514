package hexword

// WordLen is the fixed number of hex digits in one word token.
const WordLen = 8

// Nibbles is the intermediate buffer between decode and encode.
// Each element holds a value in [0, 15].
type Nibbles []byte

// Words reports how many complete words the buffer holds.
func (n Nibbles) Words() int {
	return len(n) / WordLen
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}

func nibbleValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}
