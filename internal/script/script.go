// Package script implements the .scr file format: Shift-JIS text bytes
// compressed with the huffman package. The codec treats the bytes as
// opaque; Shift-JIS is simply what they contain.
package script

import "github.com/kamiyado/aoskit/internal/huffman"

// Encode compresses Shift-JIS script bytes into .scr wire format.
func Encode(data []byte) ([]byte, error) {
	return huffman.Encode(data)
}

// Decode reverses Encode, returning bytes identical to the original input.
func Decode(data []byte) ([]byte, error) {
	return huffman.Decode(data)
}
