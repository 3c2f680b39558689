package abm

import (
	"encoding/binary"
	"testing"
)

func putFileHeader(buf []byte, sig uint16, pixelOffset uint32) {
	binary.LittleEndian.PutUint16(buf[0:], sig)
	binary.LittleEndian.PutUint32(buf[10:], pixelOffset)
}

func putInfoHeader(buf []byte, infoSize uint32, width, height int32, bitCount uint16) {
	binary.LittleEndian.PutUint32(buf[0:], infoSize)
	binary.LittleEndian.PutUint32(buf[4:], uint32(width))
	binary.LittleEndian.PutUint32(buf[8:], uint32(height))
	binary.LittleEndian.PutUint16(buf[14:], bitCount)
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	buf := make([]byte, fileHeaderSize+infoHeaderSize)
	putFileHeader(buf, 0x1234, fileHeaderSize+infoHeaderSize)
	putInfoHeader(buf[fileHeaderSize:], bmpInfoSize, 1, 1, 24)
	_, err := Decode(buf, "x")
	if err == nil {
		t.Fatal("expected an error for a bad BMP signature")
	}
}

func TestDecodeRejectsBadInfoSize(t *testing.T) {
	buf := make([]byte, fileHeaderSize+infoHeaderSize)
	putFileHeader(buf, bmpSignature, fileHeaderSize+infoHeaderSize)
	putInfoHeader(buf[fileHeaderSize:], 0x99, 1, 1, 24)
	_, err := Decode(buf, "x")
	if err == nil {
		t.Fatal("expected an error for a bad info header size")
	}
}

func TestDecodeSingleOpaqueBitmap(t *testing.T) {
	pixelOff := uint32(fileHeaderSize + infoHeaderSize)
	hdr := make([]byte, pixelOff)
	putFileHeader(hdr, bmpSignature, pixelOff)
	putInfoHeader(hdr[fileHeaderSize:], bmpInfoSize, 1, 1, 24)

	// One 1x1 pixel (3 dest bytes): a literal-opcode pair writes the first
	// two, then a skip run of 2 finishes the pixel.
	pixels := []byte{0x10, 0x20, 0x00, 0x02}
	data := append(hdr, pixels...)

	img, err := Decode(data, "stem")
	if err != nil {
		t.Fatal(err)
	}
	if img.Kind != Single {
		t.Fatalf("got kind %v", img.Kind)
	}
	if len(img.Pixels) != 3 {
		t.Fatalf("got %d pixel bytes, want 3", len(img.Pixels))
	}
}

func TestDecodeUnknownBitCountPassesThrough(t *testing.T) {
	buf := make([]byte, fileHeaderSize+infoHeaderSize)
	putFileHeader(buf, bmpSignature, fileHeaderSize+infoHeaderSize)
	putInfoHeader(buf[fileHeaderSize:], bmpInfoSize, 1, 1, 16)
	img, err := Decode(buf, "x")
	if err != nil {
		t.Fatal(err)
	}
	if img.Kind != Unknown {
		t.Fatalf("got kind %v, want Unknown", img.Kind)
	}
}

func TestDecodeNotImplementedBitDepth8(t *testing.T) {
	buf := make([]byte, fileHeaderSize+infoHeaderSize)
	putFileHeader(buf, bmpSignature, fileHeaderSize+infoHeaderSize)
	putInfoHeader(buf[fileHeaderSize:], bmpInfoSize, 1, 1, 8)
	img, err := Decode(buf, "x")
	if err != nil {
		t.Fatal(err)
	}
	if img.Kind != NotImplemented {
		t.Fatalf("got kind %v, want NotImplemented", img.Kind)
	}
}

func TestMultiFrameNames(t *testing.T) {
	width, height := int32(1), int32(1)
	headerLen := fileHeaderSize + infoHeaderSize
	animLen := 12 + 3*4 // 3 frames
	hdr := make([]byte, headerLen+animLen)
	putFileHeader(hdr, bmpSignature, uint32(headerLen))
	putInfoHeader(hdr[fileHeaderSize:], bmpInfoSize, width, height, 2)

	animOff := headerLen
	binary.LittleEndian.PutUint16(hdr[animOff:], 1)    // abm_type
	binary.LittleEndian.PutUint16(hdr[animOff+2:], 0)  // anim_mode
	binary.LittleEndian.PutUint32(hdr[animOff+4:], 3)  // frame_count
	binary.LittleEndian.PutUint32(hdr[animOff+8:], 0)  // frame_sequence_size

	frameOffsetsAt := animOff + 12
	var frames []byte
	dataStart := len(hdr)
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(hdr[frameOffsetsAt+4*i:], uint32(dataStart+len(frames)))
		// One pixel via a copy run: 0xFF, count=3, then 3 color bytes.
		frames = append(frames, 0xFF, 0x03, byte(i), byte(i), byte(i))
	}
	data := append(hdr, frames...)

	img, err := Decode(data, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if img.Kind != MultiFrame {
		t.Fatalf("got kind %v", img.Kind)
	}
	wantNames := []string{"abc#000", "abc#001", "abc#002"}
	for i, want := range wantNames {
		if img.Frames[i].Name != want {
			t.Fatalf("frame %d: got %q want %q", i, img.Frames[i].Name, want)
		}
	}
}

func TestZeroFrameCountRejected(t *testing.T) {
	headerLen := fileHeaderSize + infoHeaderSize
	hdr := make([]byte, headerLen+12)
	putFileHeader(hdr, bmpSignature, uint32(headerLen))
	putInfoHeader(hdr[fileHeaderSize:], bmpInfoSize, 1, 1, 2)
	// frame_count left at 0.
	_, err := Decode(hdr, "x")
	if err == nil {
		t.Fatal("expected an error for zero frame_count")
	}
}
