// Package losses - trainable overlap losses for bounding-box regression.
package losses

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iou/boxes"
	"github.com/nvr-ai/go-iou/overlap"
)

// GIoULoss calculates the per-example loss 1 - score for two paired
// batches of boxes, where score is the IoU or GIoU selected by mode.
//
// The loss is 0 for identical boxes and grows as the boxes diverge: up to
// 1 under ModeIoU, and toward 2 under ModeGIoU for widely separated boxes,
// which is what gives the loss gradient signal even when the boxes do not
// overlap at all.
//
// Arguments:
//   - yTrue: Batch of ground-truth boxes.
//   - yPred: Batch of predicted boxes, same length as yTrue.
//   - mode: overlap.ModeIoU or overlap.ModeGIoU.
//
// Returns:
//   - One loss value per pair.
//   - An invalid-argument error from the overlap calculator.
func GIoULoss(yTrue, yPred []boxes.Box, mode overlap.Mode) ([]float32, error) {
	scores, err := overlap.Compute(yTrue, yPred, mode)
	if err != nil {
		return nil, err
	}
	for i := range scores {
		scores[i] = 1 - scores[i]
	}
	return scores, nil
}

// Config is the reconstructable configuration of a loss. Round-tripping a
// loss through its Config yields an equivalent loss.
type Config struct {
	Mode      overlap.Mode `json:"mode"`
	Reduction Reduction    `json:"reduction"`
	Name      string       `json:"name"`
}

// GIoU is a configured, reusable loss over the GIoU (or IoU) score.
type GIoU struct {
	cfg Config
}

// NewGIoU creates a GIoU loss from a Config. Zero-value fields take the
// defaults mode=giou, reduction=mean, name="giou_loss"; a non-empty mode
// or reduction outside the supported values is an error.
func NewGIoU(cfg Config) (*GIoU, error) {
	if cfg.Mode == "" {
		cfg.Mode = overlap.ModeGIoU
	}
	if cfg.Reduction == "" {
		cfg.Reduction = ReductionMean
	}
	if cfg.Name == "" {
		cfg.Name = LossNameGIoU
	}
	if err := cfg.Mode.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Reduction.Validate(); err != nil {
		return nil, err
	}
	return &GIoU{cfg: cfg}, nil
}

// FromConfig reconstructs a loss from a previously captured Config.
func FromConfig(cfg Config) (*GIoU, error) {
	return NewGIoU(cfg)
}

// Call computes the loss for two paired batches and applies the configured
// reduction: the full per-example slice for ReductionNone, a single value
// for ReductionSum and ReductionMean.
func (g *GIoU) Call(yTrue, yPred []boxes.Box) ([]float32, error) {
	perExample, err := GIoULoss(yTrue, yPred, g.cfg.Mode)
	if err != nil {
		return nil, errors.Wrap(err, g.cfg.Name)
	}
	return g.cfg.Reduction.Apply(perExample), nil
}

// Config returns the loss configuration.
func (g *GIoU) Config() Config {
	return g.cfg
}
