// Package losses - registry for losses.
package losses

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iou/boxes"
	"github.com/nvr-ai/go-iou/overlap"
)

// Loss is a batch loss over paired box batches.
type Loss interface {
	// Call computes the reduced loss for two paired batches.
	Call(yTrue, yPred []boxes.Box) ([]float32, error)
	// Config returns the reconstructable configuration of the loss.
	Config() Config
}

const (
	// LossNameGIoU is the registered name of the Generalized IoU loss.
	LossNameGIoU = "giou_loss"
	// LossNameIoU is the registered name of the plain IoU loss.
	LossNameIoU = "iou_loss"
)

// New creates a loss instance by registered name.
//
// The name fixes the loss's mode and name; the remaining fields of cfg
// (reduction) are honored, with zero values taking the usual defaults.
//
// Arguments:
//   - name: LossNameGIoU or LossNameIoU.
//   - cfg: Additional configuration; cfg.Mode and cfg.Name are overridden
//     by the registered name.
//
// Returns:
//   - Loss: A configured loss implementing the Loss interface.
//   - error: An error if the name is not registered or cfg is invalid.
func New(name string, cfg Config) (Loss, error) {
	switch name {
	case LossNameGIoU:
		cfg.Mode = overlap.ModeGIoU
		cfg.Name = LossNameGIoU
		return NewGIoU(cfg)
	case LossNameIoU:
		cfg.Mode = overlap.ModeIoU
		cfg.Name = LossNameIoU
		return NewGIoU(cfg)
	default:
		return nil, errors.Errorf("unsupported loss %q: must be %q or %q", name, LossNameGIoU, LossNameIoU)
	}
}
