// Package hexword owns the hex word text format and its binary packing.
//
// Ownership boundary:
// - lexer: whitespace, '#' comments, optional "0x" prefix, 8-digit words
// - decode: word -> nibbles, last digit first
// - encode: nibble pairs -> bytes, low nibble first
package hexword
