package render

import "driftshore/internal/entity"

// SplitPart tags which piece of an entity a paint item carries. Whole is
// the common case; surface swimmers are torn into a bottom and a top half
// so obstacles can occlude one without the other.
type SplitPart int

const (
	PartWhole SplitPart = iota
	PartBottom
	PartTop
)

func (p SplitPart) String() string {
	switch p {
	case PartBottom:
		return "bottom"
	case PartTop:
		return "top"
	default:
		return "whole"
	}
}

// PaintItem is one entry of the frame's paint sequence. Items are
// produced fresh every frame and consumed strictly in slice order by the
// renderer: earlier entries paint first, furthest back.
type PaintItem struct {
	Category entity.Category
	Entity   *entity.Record
	Depth    float64
	Part     SplitPart

	// Submerged marks a snorkeling actor drawn as an underwater
	// silhouette instead of being split.
	Submerged bool

	// X, Y is the position snapshot the item was keyed from. Split
	// halves of one entity always share these values exactly.
	X, Y float64
}
