// Package sidecar writes the JSON companion file emitted alongside a
// decoded multi-frame ABM's BMP frames. It is the "external collaborator"
// spec.md §1/§6 describes, implemented minimally so the repository produces
// a complete extraction without a further downstream tool.
package sidecar

import (
	"encoding/json"

	"github.com/kamiyado/aoskit/internal/abm"
)

// Animation is the JSON shape spec.md §6 describes: tool version, the
// ordered frame names, and the animation header fields.
type Animation struct {
	ToolVersion       string   `json:"tool_version"`
	Frames            []string `json:"frames"`
	AbmType           uint16   `json:"abm_type"`
	AnimMode          uint16   `json:"anim_mode"`
	FrameCount        uint32   `json:"frame_count"`
	FrameSequenceSize uint32   `json:"frame_sequence_size"`
	FrameOffsets      []uint32 `json:"frame_offsets"`
	FrameSequence     []uint16 `json:"frame_sequence"`
}

// Encode builds the sidecar JSON for a decoded multi-frame image.
func Encode(toolVersion string, img *abm.Image) ([]byte, error) {
	names := make([]string, len(img.Frames))
	for i, f := range img.Frames {
		names[i] = f.Name
	}
	a := Animation{
		ToolVersion:       toolVersion,
		Frames:            names,
		AbmType:           img.Anim.AbmType,
		AnimMode:          img.Anim.AnimMode,
		FrameCount:        img.Anim.FrameCount,
		FrameSequenceSize: img.Anim.FrameSequenceSize,
		FrameOffsets:      img.Anim.FrameOffsets,
		FrameSequence:     img.Anim.FrameSequence,
	}
	return json.MarshalIndent(a, "", "  ")
}
