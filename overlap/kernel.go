package overlap

// float covers the two coordinate widths the calculator accepts. The
// kernel is generic so Float64 tensor inputs compute at full width instead
// of being squeezed through float32.
type float interface {
	~float32 | ~float64
}

// score computes one pair's overlap score. b1 and b2 are boxes in
// (y1, x1, y2, x2) layout; corner order is irrelevant because the kernel
// canonicalizes with min/max first.
func score[T float](b1, b2 [4]T, mode Mode) T {
	b1ymin, b1xmin := min(b1[0], b1[2]), min(b1[1], b1[3])
	b1ymax, b1xmax := max(b1[0], b1[2]), max(b1[1], b1[3])
	b2ymin, b2xmin := min(b2[0], b2[2]), min(b2[1], b2[3])
	b2ymax, b2xmax := max(b2[0], b2[2]), max(b2[1], b2[3])

	b1area := max(0, b1xmax-b1xmin) * max(0, b1ymax-b1ymin)
	b2area := max(0, b2xmax-b2xmin) * max(0, b2ymax-b2ymin)

	interW := max(0, min(b1xmax, b2xmax)-max(b1xmin, b2xmin))
	interH := max(0, min(b1ymax, b2ymax)-max(b1ymin, b2ymin))
	interArea := interW * interH

	unionArea := b1area + b2area - interArea
	iou := safeDiv(interArea, unionArea)
	if mode == ModeIoU {
		return iou
	}

	encloseW := max(0, max(b1xmax, b2xmax)-min(b1xmin, b2xmin))
	encloseH := max(0, max(b1ymax, b2ymax)-min(b1ymin, b2ymin))
	encloseArea := encloseW * encloseH
	return iou - safeDiv(encloseArea-unionArea, encloseArea)
}

// safeDiv is the guarded division the score formulas rely on: a zero
// denominator yields 0, never NaN. A zero union means both boxes are
// degenerate and count as non-overlapping; a zero enclosing area means
// both boxes collapsed to the same point and the penalty term vanishes.
func safeDiv[T float](num, den T) T {
	if den == 0 {
		return 0
	}
	return num / den
}
