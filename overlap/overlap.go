// Package overlap - batch IoU and Generalized IoU over paired box batches.
//
// Given two equal-length batches of boxes, element i of the true batch is
// scored against element i of the predicted batch (paired, not
// cross-product). The computation is a pure elementwise transform; each
// pair's score is independent of every other pair's.
package overlap

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iou/boxes"
)

// Mode selects which overlap score the calculator produces.
type Mode string

const (
	// ModeIoU computes plain Intersection over Union, in [0, 1].
	ModeIoU Mode = "iou"
	// ModeGIoU computes Generalized IoU, in (-1, 1].
	ModeGIoU Mode = "giou"
)

// Modes is the list of all supported modes.
var Modes = []Mode{ModeIoU, ModeGIoU}

// Validate returns an error if the mode is not one of the supported modes.
func (m Mode) Validate() error {
	switch m {
	case ModeIoU, ModeGIoU:
		return nil
	}
	return errors.Errorf("invalid mode %q: must be %q or %q", string(m), ModeIoU, ModeGIoU)
}

// Compute calculates the per-pair overlap score between two paired batches
// of boxes.
//
// Arguments:
//   - truth: Batch of ground-truth boxes.
//   - pred: Batch of predicted boxes, same length as truth.
//   - mode: ModeIoU or ModeGIoU.
//
// Returns:
//   - One score per pair, len(truth) long.
//   - An invalid-argument error, produced before any arithmetic, for an
//     unknown mode, a batch-length mismatch, or a non-finite coordinate.
//
// Degenerate geometry is not an error: zero-area boxes, zero union, and a
// zero enclosing area all flow through the guarded division and score 0.
func Compute(truth, pred []boxes.Box, mode Mode) ([]float32, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if len(truth) != len(pred) {
		return nil, errors.Errorf("batch size mismatch: %d true boxes vs %d predicted boxes", len(truth), len(pred))
	}
	for i := range truth {
		if !truth[i].Finite() {
			return nil, errors.Errorf("true box %d has non-finite coordinates: %s", i, truth[i])
		}
		if !pred[i].Finite() {
			return nil, errors.Errorf("predicted box %d has non-finite coordinates: %s", i, pred[i])
		}
	}

	scores := make([]float32, len(pred))
	for i := range pred {
		scores[i] = score(
			[4]float32{pred[i].Y1, pred[i].X1, pred[i].Y2, pred[i].X2},
			[4]float32{truth[i].Y1, truth[i].X1, truth[i].Y2, truth[i].X2},
			mode,
		)
	}
	return scores, nil
}
