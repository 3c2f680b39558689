package aos

import (
	"fmt"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/kamiyado/aoskit/internal/script"
	"github.com/kamiyado/aoskit/internal/sjis"
)

// InputFile is one file to pack, already read from disk by the caller in
// the order the caller enumerated them; Pack preserves that order exactly
// in the resulting entry index.
type InputFile struct {
	Name string
	Data []byte
}

// Pack builds a complete, byte-exact AOS archive from an ordered list of
// input files. When encode is true, .txt files are Huffman-compressed into
// .scr entries; every other file (including .abm, passed through per
// spec.md §4.5) is stored as-is. archiveStem names the archive (the
// directory name the CLI packed, without its .aos suffix).
//
// Name validation fails the whole operation with a single error and no
// partial archive, per spec.md §7.
func Pack(archiveStem string, files []InputFile, encode bool) ([]byte, error) {
	type packedEntry struct {
		Entry
		data []byte
	}

	entries := make([]packedEntry, 0, len(files))
	fieldDigests := make(map[uint64]string, len(files))

	for _, f := range files {
		name, data := f.Name, f.Data
		if encode && strings.ToLower(path.Ext(name)) == ".txt" {
			enc, err := script.Encode(data)
			if err != nil {
				return nil, fmt.Errorf("aos: encoding %q: %w", name, err)
			}
			stem := name[:len(name)-len(path.Ext(name))]
			name, data = stem+".scr", enc
		}

		n, err := sjis.EncodedLen(name)
		if err != nil {
			return nil, fmt.Errorf("aos: encoding name %q: %w", name, err)
		}
		if n > nameFieldSize {
			return nil, fmt.Errorf("%w: %q is %d Shift-JIS bytes", ErrNameTooLong, name, n)
		}

		field, err := sjis.PutField(name, nameFieldSize)
		if err != nil {
			return nil, fmt.Errorf("aos: encoding name %q: %w", name, err)
		}
		digest := xxhash.Sum64(field)
		if prior, collide := fieldDigests[digest]; collide && prior != name {
			return nil, fmt.Errorf("aos: names %q and %q collide once packed into a 32-byte field", prior, name)
		}
		fieldDigests[digest] = name

		entries = append(entries, packedEntry{Entry: Entry{FileName: name, Size: uint32(len(data))}, data: data})
	}

	var offset uint32
	for i := range entries {
		entries[i].Offset = offset
		offset += entries[i].Size
	}

	indexSize := uint32(len(entries)) * EntrySize
	dataOffset := HeaderSize + indexSize

	header := Header{
		Signature:   0,
		DataOffset:  dataOffset,
		IndexSize:   indexSize,
		ArchiveName: archiveStem + ".aos",
	}
	headerBytes, err := header.marshal()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, dataOffset+offset)
	out = append(out, headerBytes...)
	for _, pe := range entries {
		eb, err := pe.Entry.marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, eb...)
	}
	for _, pe := range entries {
		out = append(out, pe.data...)
	}
	return out, nil
}
