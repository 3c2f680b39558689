package aos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnpackPassthroughWhenDecodeFalse(t *testing.T) {
	files := []InputFile{
		{Name: "notes.scr", Data: []byte{0xAA, 0xBB, 0xCC}},
	}
	archive, err := Pack("stem", files, false)
	require.NoError(t, err)

	out, err := Unpack(archive, false, "test")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "notes.scr", out[0].Name)
	require.Equal(t, files[0].Data, out[0].Data)
}

func TestUnpackScriptRoundTrip(t *testing.T) {
	plain := []byte("the quick brown fox jumps over the lazy dog")
	files := []InputFile{{Name: "a.txt", Data: plain}}

	archive, err := Pack("scripts", files, true)
	require.NoError(t, err)

	out, err := Unpack(archive, true, "test")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "a.scr", mustFindEntryName(t, archive))
	require.Equal(t, "a.txt", out[0].Name)
	require.Equal(t, plain, out[0].Data)
}

func TestUnpackMaskRenamedToBmp(t *testing.T) {
	files := []InputFile{{Name: "shadow.msk", Data: []byte{1, 2, 3, 4}}}
	archive, err := Pack("masks", files, false)
	require.NoError(t, err)

	out, err := Unpack(archive, true, "test")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "shadow.bmp", out[0].Name)
	require.Equal(t, files[0].Data, out[0].Data)
}

func TestUnpackMaskNotRenamedWhenDecodeFalse(t *testing.T) {
	// Round-trip law: extract with --nodecode then repack must reproduce the
	// original entry name exactly, so the .msk -> .bmp rename (a decode-time
	// transform) must not fire when decode is false.
	files := []InputFile{{Name: "shadow.msk", Data: []byte{1, 2, 3, 4}}}
	archive, err := Pack("masks", files, false)
	require.NoError(t, err)

	out, err := Unpack(archive, false, "test")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "shadow.msk", out[0].Name)
	require.Equal(t, files[0].Data, out[0].Data)
}

func TestUnpackDefaultPassthrough(t *testing.T) {
	files := []InputFile{{Name: "readme.dat", Data: []byte("hi")}}
	archive, err := Pack("misc", files, false)
	require.NoError(t, err)

	out, err := Unpack(archive, true, "test")
	require.NoError(t, err)
	require.Equal(t, "readme.dat", out[0].Name)
}

func mustFindEntryName(t *testing.T, archive []byte) string {
	t.Helper()
	ar, err := Open(bytes.NewReader(archive))
	require.NoError(t, err)
	require.Len(t, ar.Entries, 1)
	return ar.Entries[0].FileName
}
