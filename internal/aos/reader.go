package aos

import (
	"bytes"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/kamiyado/aoskit/internal/abm"
	"github.com/kamiyado/aoskit/internal/bmpio"
	"github.com/kamiyado/aoskit/internal/script"
	"github.com/kamiyado/aoskit/internal/sidecar"
)

// OutputFile is one decoded (or passed-through) file produced by Unpack,
// named and content-ready to be written to disk by the caller.
type OutputFile struct {
	Name string
	Data []byte
}

// Unpack reads every entry of an AOS archive and, when decode is true,
// applies the per-extension dispatch spec.md §4.5 describes: .scr through
// the Huffman script codec, .abm through the ABM image codec (emitting one
// or more BMPs plus a JSON sidecar for multi-frame results), .msk renamed
// to .bmp unchanged, anything else passed through as-is. When decode is
// false (the CLI's --nodecode), every entry is passed through unchanged
// with its original name.
//
// toolVersion is stamped into multi-frame JSON sidecars.
func Unpack(data []byte, decode bool, toolVersion string) ([]OutputFile, error) {
	ar, err := Open(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var out []OutputFile
	seen := make(map[uint64]string, len(ar.Entries))

	for _, e := range ar.Entries {
		raw, err := ar.EntryBytes(e)
		if err != nil {
			return nil, err
		}

		ext := strings.ToLower(path.Ext(e.FileName))
		stem := e.FileName[:len(e.FileName)-len(path.Ext(e.FileName))]

		var files []OutputFile
		switch {
		case ext == ".scr" && decode:
			plain, err := script.Decode(raw)
			if err != nil {
				return nil, fmt.Errorf("aos: decoding script entry %q: %w", e.FileName, err)
			}
			files = []OutputFile{{Name: stem + ".txt", Data: plain}}

		case ext == ".abm" && decode:
			files, err = unpackABM(raw, stem, toolVersion)
			if err != nil {
				return nil, err
			}

		case ext == ".msk" && decode:
			files = []OutputFile{{Name: stem + ".bmp", Data: raw}}

		default:
			files = []OutputFile{{Name: e.FileName, Data: raw}}
		}

		for _, f := range files {
			// Hash the decoded content, not the name: two entries that
			// happen to decode to byte-identical output are worth a debug
			// hint even when their names differ, since it usually means the
			// archive stores the same asset twice.
			digest := xxhash.Sum64(f.Data)
			if prior, dup := seen[digest]; dup {
				slog.Debug("aos: output content duplicates an earlier entry", "name", f.Name, "matches", prior)
			}
			seen[digest] = f.Name
		}
		out = append(out, files...)
	}
	return out, nil
}

// unpackABM decodes one .abm entry, logging and passing it through
// unchanged on any decode failure — the deliberate per-entry robustness
// policy spec.md §7 calls out ("Decode exception during archive
// extraction").
func unpackABM(raw []byte, stem, toolVersion string) ([]OutputFile, error) {
	img, err := abm.Decode(raw, stem)
	if err != nil {
		slog.Warn("aos: ABM decode failed, writing entry unchanged", "name", stem+".abm", "err", err)
		return []OutputFile{{Name: stem + ".abm", Data: raw}}, nil
	}

	switch img.Kind {
	case abm.Single:
		bmp := bmpio.Encode(img.Pixels, img.Width, img.Height, img.BitCount)
		return []OutputFile{{Name: stem + ".bmp", Data: bmp}}, nil

	case abm.MultiFrame:
		files := make([]OutputFile, 0, len(img.Frames)+1)
		for _, f := range img.Frames {
			bmp := bmpio.Encode(f.Pixels, img.Width, img.Height, img.BitCount)
			files = append(files, OutputFile{Name: f.Name + ".bmp", Data: bmp})
		}
		sideJSON, err := sidecar.Encode(toolVersion, img)
		if err != nil {
			return nil, fmt.Errorf("aos: building sidecar for %q: %w", stem, err)
		}
		files = append(files, OutputFile{Name: stem + ".json", Data: sideJSON})
		return files, nil

	default: // NotImplemented, Unknown
		return []OutputFile{{Name: stem + ".abm", Data: raw}}, nil
	}
}
