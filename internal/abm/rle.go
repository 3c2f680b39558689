package abm

import "io"

// decodeRLE24 decodes an opaque, 3-bytes-per-pixel RLE stream into a
// width*height*3 buffer. Opcode 0x00 is a skip/transparent run (leaves
// destination bytes at zero), 0xFF is a verbatim copy run, and any other
// byte is a literal that the format stores as a pair: the opcode itself is
// the first destination byte, and exactly one more input byte is read and
// written as the second destination byte, but the destination cursor only
// advances by one. This is transcribed exactly per the reference behavior
// rather than "fixed" — see the regression fixture in rle_test.go.
func decodeRLE24(src []byte, width, height int) ([]byte, error) {
	return decodeRLE24Sized(src, width*height*3)
}

// decodeRLE24Sized is decodeRLE24's opcode loop parameterized directly on
// the destination length, used by tests exercising spec §8's worked
// byte-level scenarios independent of any width/height framing.
func decodeRLE24Sized(src []byte, destLen int) ([]byte, error) {
	dest := make([]byte, destLen)
	var p, i int
	for i < len(dest) {
		if p >= len(src) {
			return nil, io.ErrUnexpectedEOF
		}
		v := src[p]
		p++
		switch v {
		case 0x00:
			if p >= len(src) {
				return nil, io.ErrUnexpectedEOF
			}
			n := int(src[p])
			p++
			if n == 0 {
				continue
			}
			i += n
			if i > len(dest) {
				i = len(dest)
			}
		case 0xFF:
			if p >= len(src) {
				return nil, io.ErrUnexpectedEOF
			}
			n := int(src[p])
			p++
			if n == 0 {
				continue
			}
			if p+n > len(src) {
				return nil, io.ErrUnexpectedEOF
			}
			end := i + n
			if end > len(dest) {
				end = len(dest)
			}
			copy(dest[i:end], src[p:p+(end-i)])
			p += n
			i += n
		default:
			if i < len(dest) {
				dest[i] = v
			}
			if p >= len(src) {
				return nil, io.ErrUnexpectedEOF
			}
			u := src[p]
			p++
			if i+1 < len(dest) {
				dest[i+1] = u
			}
			i++
		}
	}
	return dest, nil
}

// decodeRLE32 decodes a 4-bytes-per-pixel (B, G, R, A) RLE stream. Unlike
// decodeRLE24, the decoder tracks a color-component counter 0..2 cycling
// over B, G, R and automatically synthesizes the alpha byte once every
// third component lands, per spec: skip runs leave alpha at zero
// (transparent), copy runs leave alpha at 0xFF (opaque), and a literal
// opcode that completes a pixel writes its own value again as the alpha
// byte.
func decodeRLE32(src []byte, width, height int) ([]byte, error) {
	dest := make([]byte, width*height*4)
	var p, i, cc int
	for i < len(dest) {
		if p >= len(src) {
			return nil, io.ErrUnexpectedEOF
		}
		v := src[p]
		p++
		switch v {
		case 0x00:
			if p >= len(src) {
				return nil, io.ErrUnexpectedEOF
			}
			n := int(src[p])
			p++
			for k := 0; k < n && i < len(dest); k++ {
				i++ // destination already zero; this is the skipped component
				cc++
				if cc == 3 {
					if i < len(dest) {
						i++ // alpha slot, left zero
					}
					cc = 0
				}
			}
		case 0xFF:
			if p >= len(src) {
				return nil, io.ErrUnexpectedEOF
			}
			n := int(src[p])
			p++
			for k := 0; k < n && i < len(dest); k++ {
				if p >= len(src) {
					return nil, io.ErrUnexpectedEOF
				}
				dest[i] = src[p]
				p++
				i++
				cc++
				if cc == 3 {
					if i < len(dest) {
						dest[i] = 0xFF
						i++
					}
					cc = 0
				}
			}
		default:
			if i < len(dest) {
				dest[i] = v
			}
			i++
			cc++
			if cc == 3 {
				if i < len(dest) {
					dest[i] = v
					i++
				}
				cc = 0
			}
		}
	}
	return dest, nil
}

// decodeRawTriplets reads width*height raw (B, G, R) 3-byte pixels and
// expands them into a 4-byte (B, G, R, 0xFF) buffer. This is the special
// first-frame form used by bit-count 1 animations (spec §4.4).
func decodeRawTriplets(src []byte, width, height int) ([]byte, error) {
	n := width * height
	if len(src) < n*3 {
		return nil, io.ErrUnexpectedEOF
	}
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		out[4*i+0] = src[3*i+0]
		out[4*i+1] = src[3*i+1]
		out[4*i+2] = src[3*i+2]
		out[4*i+3] = 0xFF
	}
	return out, nil
}
