// Package sjis decodes and encodes the Shift-JIS (code page 932) text that
// AOS archive and entry names, and the engine's script files, are stored in.
package sjis

import (
	"bytes"

	"golang.org/x/text/encoding/japanese"
)

// Decode converts null-padded or -truncated Shift-JIS bytes into a Go
// string, trimming trailing NUL padding before transcoding.
func Decode(b []byte) (string, error) {
	b = bytes.TrimRight(b, "\x00")
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode converts s to Shift-JIS bytes with no padding or truncation
// applied; callers that need a fixed-width field use PutField.
func Encode(s string) ([]byte, error) {
	return japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
}

// EncodedLen returns the number of Shift-JIS bytes s encodes to, without
// allocating the field. Used by the AOS write path to validate names
// against the 32-byte limit by byte length rather than character count
// (spec §9's "Name length validation" design note, corrected here).
func EncodedLen(s string) (int, error) {
	b, err := Encode(s)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// PutField encodes s into a fixed-width Shift-JIS field of exactly width
// bytes: NUL-padded on the right if the encoding is shorter, truncated with
// no terminator if it exactly fills or would overflow the field.
func PutField(s string, width int) ([]byte, error) {
	enc, err := Encode(s)
	if err != nil {
		return nil, err
	}
	field := make([]byte, width)
	copy(field, enc) // copy truncates if enc is longer than width
	return field, nil
}
