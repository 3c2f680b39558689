package abm

import "testing"

func TestFlipVertical1x1Identity(t *testing.T) {
	buf := []byte{1, 2, 3}
	got := flipVertical(buf, 1, 1, 3)
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestFlipVertical2x2(t *testing.T) {
	// Bottom-first storage: row0=R2 R3, row1=R0 R1 (stride = 2 pixels * 3 bytes = 6).
	r0 := []byte{1, 1, 1}
	r1 := []byte{2, 2, 2}
	r2 := []byte{3, 3, 3}
	r3 := []byte{4, 4, 4}
	bottomFirst := concat(r2, r3, r0, r1)

	got := flipVertical(bottomFirst, 2, 2, 3)
	want := concat(r0, r1, r2, r3)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %#x want %#x", i, got[i], want[i])
		}
	}
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
