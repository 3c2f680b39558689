package aos

import (
	"fmt"
	"io"

	"github.com/kamiyado/aoskit/internal/sectionreader"
)

// Archive is a parsed AOS container: its header and entry index, plus the
// underlying reader entry data is sectioned out of on demand.
type Archive struct {
	Header  Header
	Entries []Entry

	r io.ReaderAt
}

// Open reads and validates an AOS archive's header and entry index from r.
// Entry payloads are not read until EntryBytes is called.
func Open(r io.ReaderAt) (*Archive, error) {
	var hdrBuf [HeaderSize]byte
	if _, err := r.ReadAt(hdrBuf[:], 0); err != nil {
		return nil, fmt.Errorf("aos: reading header: %w", err)
	}
	h, err := parseHeader(hdrBuf[:])
	if err != nil {
		return nil, err
	}

	entryCount := int(h.IndexSize / EntrySize)
	entries := make([]Entry, entryCount)
	if entryCount > 0 {
		idxBuf := make([]byte, h.IndexSize)
		if _, err := r.ReadAt(idxBuf, HeaderSize); err != nil {
			return nil, fmt.Errorf("aos: reading entry index: %w", err)
		}
		for i := range entries {
			e, err := parseEntry(idxBuf[i*EntrySize:])
			if err != nil {
				return nil, fmt.Errorf("aos: entry %d: %w", i, err)
			}
			entries[i] = e
		}
	}

	return &Archive{Header: h, Entries: entries, r: r}, nil
}

// EntryBytes reads an entry's full payload from the data region, sectioned
// and bounds-checked the way the teacher routes fork/resource reads through
// internal/sectionreader.
func (a *Archive) EntryBytes(e Entry) ([]byte, error) {
	sr := sectionreader.Section(a.r, int64(a.Header.DataOffset)+int64(e.Offset), int64(e.Size))
	buf := make([]byte, e.Size)
	if _, err := sr.ReadAt(buf, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("aos: reading entry %q: %w", e.FileName, err)
	}
	return buf, nil
}
