package huffman

import (
	"bytes"
	"fmt"

	"github.com/kamiyado/aoskit/internal/bitio"
)

// Encode compresses data as: little-endian u32 uncompressed length, the
// bit-packed Huffman tree, then the bit-packed coded body, byte-aligned with
// zero padding at the end. Returns ErrSingleSymbol if data doesn't contain
// at least two distinct byte values.
func Encode(data []byte) ([]byte, error) {
	freqs := make(map[byte]uint32)
	for _, b := range data {
		freqs[b]++
	}
	tree, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := w.WriteUint32LE(uint32(len(data))); err != nil {
		return nil, err
	}
	if err := tree.Serialize(w); err != nil {
		return nil, err
	}
	for _, b := range data {
		code, ok := tree.Code(b)
		if !ok {
			return nil, fmt.Errorf("huffman: byte %#x has no code", b)
		}
		if err := w.WriteBits(code); err != nil {
			return nil, err
		}
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode: it reads the uncompressed length, rebuilds the
// tree, then decodes exactly that many bytes. There is no end-of-stream
// sentinel in the coded body; the declared length alone governs termination.
func Decode(data []byte) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(data))
	n, err := r.ReadUint32LE()
	if err != nil {
		return nil, fmt.Errorf("huffman: reading uncompressed length: %w", err)
	}
	tree, err := deserializeTree(r)
	if err != nil {
		return nil, fmt.Errorf("huffman: reading tree: %w", err)
	}

	out := make([]byte, n)
	for i := range out {
		b, err := tree.decodeByte(r)
		if err != nil {
			return nil, fmt.Errorf("huffman: decoding byte %d of %d: %w", i, n, err)
		}
		out[i] = b
	}
	return out, nil
}
