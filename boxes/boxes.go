// Package boxes - Axis-aligned bounding box geometry for detection metrics.
package boxes

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// Box is an axis-aligned bounding box given by two opposite corners in
// (y1, x1, y2, x2) layout. The corners may be supplied in either order;
// every operation canonicalizes to min/max form first, so an inverted box
// scores identically to its canonical form.
type Box struct {
	Y1, X1, Y2, X2 float32
}

// Canon returns the box with its coordinates normalized so that
// (Y1, X1) is the minimum corner and (Y2, X2) is the maximum corner.
func (b Box) Canon() Box {
	return Box{
		Y1: min(b.Y1, b.Y2),
		X1: min(b.X1, b.X2),
		Y2: max(b.Y1, b.Y2),
		X2: max(b.X1, b.X2),
	}
}

// Width returns the horizontal extent of the box, clamped at zero so that
// degenerate boxes never report a negative width.
func (b Box) Width() float32 {
	c := b.Canon()
	return max(0, c.X2-c.X1)
}

// Height returns the vertical extent of the box, clamped at zero.
func (b Box) Height() float32 {
	c := b.Canon()
	return max(0, c.Y2-c.Y1)
}

// Area returns the area of the box. Zero-extent boxes have zero area.
func (b Box) Area() float32 {
	return b.Width() * b.Height()
}

// Intersect returns the intersection box of b and o using the
// max-of-mins / min-of-maxes pattern. When the boxes do not overlap the
// result has inverted coordinates; its Area is zero.
func (b Box) Intersect(o Box) Box {
	bc, oc := b.Canon(), o.Canon()
	return Box{
		Y1: max(bc.Y1, oc.Y1),
		X1: max(bc.X1, oc.X1),
		Y2: min(bc.Y2, oc.Y2),
		X2: min(bc.X2, oc.X2),
	}
}

// Intersection calculates the intersection area between two boxes.
// Non-overlapping boxes yield zero, never a negative area.
func (b Box) Intersection(o Box) float32 {
	i := b.Intersect(o)
	// An inverted intersection box means the inputs are disjoint, so the
	// extents are clamped directly rather than re-canonicalized.
	w := max(0, i.X2-i.X1)
	h := max(0, i.Y2-i.Y1)
	return w * h
}

// Union calculates the union area between two boxes using
// inclusion-exclusion: Area(A) + Area(B) - Area(A ∩ B).
func (b Box) Union(o Box) float32 {
	return b.Area() + o.Area() - b.Intersection(o)
}

// Enclose returns the tightest box containing both b and o.
func (b Box) Enclose(o Box) Box {
	bc, oc := b.Canon(), o.Canon()
	return Box{
		Y1: min(bc.Y1, oc.Y1),
		X1: min(bc.X1, oc.X1),
		Y2: max(bc.Y2, oc.Y2),
		X2: max(bc.X2, oc.X2),
	}
}

// IoU calculates the Intersection over Union between two boxes.
//
// The result is in [0, 1]: 1.0 for identical boxes, 0.0 for disjoint ones.
// Two zero-area boxes score 0 by the guarded-division convention rather
// than producing NaN.
func (b Box) IoU(o Box) float32 {
	return SafeDiv(b.Intersection(o), b.Union(o))
}

// GIoU calculates the Generalized IoU between two boxes: the IoU penalized
// by the fraction of the enclosing box not covered by the union. Unlike
// plain IoU it keeps discriminating between disjoint boxes, going negative
// as the boxes separate, and is bounded above by the IoU.
func (b Box) GIoU(o Box) float32 {
	iou := b.IoU(o)
	enclose := b.Enclose(o).Area()
	union := b.Union(o)
	return iou - SafeDiv(enclose-union, enclose)
}

// Finite reports whether every coordinate of the box is a finite number.
func (b Box) Finite() bool {
	for _, c := range [4]float32{b.Y1, b.X1, b.Y2, b.X2} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ToRect converts the box to an image.Rectangle, truncating the
// floating-point coordinates. Useful when handing a box to image-space
// consumers; overlap scoring stays in float32 and does not round-trip
// through this.
func (b Box) ToRect() image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2)).Canon()
}

func (b Box) String() string {
	return fmt.Sprintf("(%g, %g), (%g, %g)", b.Y1, b.X1, b.Y2, b.X2)
}

// SafeDiv divides num by den, returning exactly 0 when den is zero instead
// of the NaN/Inf that default floating-point semantics would produce.
func SafeDiv(num, den float32) float32 {
	if den == 0 {
		return 0
	}
	return num / den
}
