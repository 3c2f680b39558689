// Package aos implements the AOS archive container: a fixed 273-byte
// header, a fixed 40-byte-per-entry index, and a concatenated data region.
// Header and entry field extraction follows the teacher's fixed-offset
// binary parsing style (elliotnunn/BeHierarchic internal/resourcefork and
// internal/sit read sequential fixed-width records the same way), adapted
// from a tree-shaped directory walk to this format's flat entry list, and
// bounds-checked reads through internal/sectionreader the same way the
// teacher routes resource-fork and StuffIt data reads through it.
package aos

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/kamiyado/aoskit/internal/sjis"
)

const (
	HeaderSize = 273
	EntrySize  = 40

	nameFieldSize    = 32
	archiveNameField = 261
)

var (
	ErrBadSignature = errors.New("aos: non-zero archive signature")
	ErrNameTooLong  = errors.New("aos: file name exceeds 32 Shift-JIS bytes")
	ErrShortHeader  = errors.New("aos: truncated archive header")
	ErrShortIndex   = errors.New("aos: truncated entry index")
)

// Header is the fixed 273-byte AOS archive header.
type Header struct {
	Signature   uint32
	DataOffset  uint32
	IndexSize   uint32
	ArchiveName string // decoded from the 261-byte Shift-JIS field
}

// Entry is one fixed 40-byte AOS archive index record.
type Entry struct {
	FileName string // decoded from the 32-byte Shift-JIS field, truncating
	Offset   uint32 // relative to Header.DataOffset
	Size     uint32
}

func parseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	name, err := sjis.Decode(b[12 : 12+archiveNameField])
	if err != nil {
		return Header{}, fmt.Errorf("aos: decoding archive name: %w", err)
	}
	h := Header{
		Signature:   binary.LittleEndian.Uint32(b[0:]),
		DataOffset:  binary.LittleEndian.Uint32(b[4:]),
		IndexSize:   binary.LittleEndian.Uint32(b[8:]),
		ArchiveName: name,
	}
	// Spec §7: a non-zero signature is tolerated but suspicious; the
	// reference does not reject it, so neither do we. Signature is exposed
	// on Header for callers that want to log or reject it themselves.
	return h, nil
}

func (h Header) marshal() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:], h.Signature)
	binary.LittleEndian.PutUint32(buf[4:], h.DataOffset)
	binary.LittleEndian.PutUint32(buf[8:], h.IndexSize)
	name, err := sjis.PutField(h.ArchiveName, archiveNameField)
	if err != nil {
		return nil, fmt.Errorf("aos: encoding archive name: %w", err)
	}
	copy(buf[12:], name)
	return buf, nil
}

func parseEntry(b []byte) (Entry, error) {
	if len(b) < EntrySize {
		return Entry{}, ErrShortIndex
	}
	name, err := sjis.Decode(b[0:nameFieldSize])
	if err != nil {
		return Entry{}, fmt.Errorf("aos: decoding entry name: %w", err)
	}
	return Entry{
		FileName: name,
		Offset:   binary.LittleEndian.Uint32(b[32:]),
		Size:     binary.LittleEndian.Uint32(b[36:]),
	}, nil
}

func (e Entry) marshal() ([]byte, error) {
	buf := make([]byte, EntrySize)
	name, err := sjis.PutField(e.FileName, nameFieldSize)
	if err != nil {
		return nil, fmt.Errorf("aos: encoding entry name %q: %w", e.FileName, err)
	}
	copy(buf[0:], name)
	binary.LittleEndian.PutUint32(buf[32:], e.Offset)
	binary.LittleEndian.PutUint32(buf[36:], e.Size)
	return buf, nil
}
