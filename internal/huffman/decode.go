package huffman

import "github.com/kamiyado/aoskit/internal/bitio"

// maxNodes bounds the flat decode arrays: a stream built from this format
// can have at most 256 leaves and therefore at most 255 internal nodes, so
// the highest possible internal-node id is 510 (511 entries, ids 256..510).
const maxNodes = 511

// rootID is the internal-node id space's first value; byte-valued ids below
// this are leaves.
const rootID = 256

// decodeTree is the flat-array tree representation used for decoding: no
// decoded tree is ever walked as linked nodes, only as indices into bit0/bit1.
type decodeTree struct {
	bit0, bit1 [maxNodes]int32
	root       int32
	singleLeaf bool // root is itself a leaf value (degenerate one-symbol tree)
}

// deserializeTree rebuilds the flat tree from its bit-packed pre-order
// encoding. See Tree.Serialize for the wire format.
func deserializeTree(r *bitio.Reader) (*decodeTree, error) {
	t := &decodeTree{}
	nextID := int32(rootID)
	root, err := t.readNode(r, &nextID)
	if err != nil {
		return nil, err
	}
	t.root = root
	t.singleLeaf = root < rootID
	return t, nil
}

// readNode mirrors huffman.go's recursive descent in the teacher: a leaf
// writes/reads a 0 bit then a byte; an internal node writes/reads a 1 bit
// then recurses into its two children, claiming its own id before doing so.
func (t *decodeTree) readNode(r *bitio.Reader, nextID *int32) (int32, error) {
	bit, err := r.ReadBit()
	if err != nil {
		return 0, err
	}
	if !bit {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		return int32(b), nil
	}

	id := *nextID
	*nextID++
	if id >= maxNodes {
		// Defensive cap matching the reference decoder: a well-formed
		// stream from this format can never reach this branch.
		return 0, nil
	}

	left, err := t.readNode(r, nextID)
	if err != nil {
		return 0, err
	}
	right, err := t.readNode(r, nextID)
	if err != nil {
		return 0, err
	}
	t.bit0[id] = left
	t.bit1[id] = right
	return id, nil
}

// decodeByte walks from the root, consuming one bit per internal node, until
// it reaches a leaf id (< rootID), which is the decoded byte value.
func (t *decodeTree) decodeByte(r *bitio.Reader) (byte, error) {
	if t.singleLeaf {
		return byte(t.root), nil
	}
	id := t.root
	for id >= rootID {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			id = t.bit1[id]
		} else {
			id = t.bit0[id]
		}
	}
	return byte(id), nil
}
