package losses

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iou/boxes"
)

// Reduction selects how per-example losses are collapsed across a batch.
type Reduction string

const (
	// ReductionNone returns the per-example losses unchanged.
	ReductionNone Reduction = "none"
	// ReductionSum returns the sum of the per-example losses.
	ReductionSum Reduction = "sum"
	// ReductionMean returns the arithmetic mean of the per-example losses.
	ReductionMean Reduction = "mean"
)

// Reductions is the list of all supported reductions.
var Reductions = []Reduction{ReductionNone, ReductionSum, ReductionMean}

// Validate returns an error if the reduction is not one of the supported
// reductions.
func (r Reduction) Validate() error {
	switch r {
	case ReductionNone, ReductionSum, ReductionMean:
		return nil
	}
	return errors.Errorf("invalid reduction %q: must be %q, %q or %q",
		string(r), ReductionNone, ReductionSum, ReductionMean)
}

// Apply collapses per-example losses according to the reduction policy.
// ReductionNone returns the input as-is; ReductionSum and ReductionMean
// return a single-element slice. The mean of an empty batch is 0 under the
// same guarded-division convention the geometry uses.
func (r Reduction) Apply(values []float32) []float32 {
	switch r {
	case ReductionSum:
		return []float32{sum(values)}
	case ReductionMean:
		return []float32{boxes.SafeDiv(sum(values), float32(len(values)))}
	default:
		return values
	}
}

func sum(values []float32) float32 {
	var total float32
	for _, v := range values {
		total += v
	}
	return total
}
