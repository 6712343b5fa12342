package model

type SegmentKind string

const (
	SegmentSpace SegmentKind = "space"
	SegmentChord SegmentKind = "chord"
)

// Segment is one unit of a rebuilt chord line. An ordered run of segments
// reconstructs the whole line with column-accurate alignment.
type Segment struct {
	Kind   SegmentKind `json:"kind"`
	Text   string      `json:"text"`
	Length int         `json:"length"`
}
