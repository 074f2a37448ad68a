package overlap

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// ComputeTensor calculates per-pair overlap scores for two (N, 4) tensors
// of boxes, the batch layout detection models emit.
//
// Both tensors must be Float32 or Float64. The true-box tensor is coerced
// to the predicted tensor's dtype before scoring, and the result is a
// length-N vector tensor of that dtype.
//
// Arguments:
//   - truth: Ground-truth boxes, shape (N, 4).
//   - pred: Predicted boxes, shape (N, 4).
//   - mode: ModeIoU or ModeGIoU.
//
// Returns:
//   - A length-N vector tensor of scores.
//   - An invalid-argument error, produced before any arithmetic, for an
//     unknown mode, a shape or dtype violation, a batch-size mismatch, or
//     non-finite coordinates.
func ComputeTensor(truth, pred *tensor.Dense, mode Mode) (*tensor.Dense, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if err := checkBoxShape(truth, "true"); err != nil {
		return nil, err
	}
	if err := checkBoxShape(pred, "predicted"); err != nil {
		return nil, err
	}
	n := pred.Shape()[0]
	if truth.Shape()[0] != n {
		return nil, errors.Errorf("batch size mismatch: %d true boxes vs %d predicted boxes", truth.Shape()[0], n)
	}

	switch pred.Dtype() {
	case tensor.Float32:
		t, err := backingFloat32(truth, "true")
		if err != nil {
			return nil, err
		}
		p, err := backingFloat32(pred, "predicted")
		if err != nil {
			return nil, err
		}
		return tensor.New(tensor.WithShape(n), tensor.WithBacking(scoreFlat(p, t, n, mode))), nil
	case tensor.Float64:
		t, err := backingFloat64(truth, "true")
		if err != nil {
			return nil, err
		}
		p, err := backingFloat64(pred, "predicted")
		if err != nil {
			return nil, err
		}
		return tensor.New(tensor.WithShape(n), tensor.WithBacking(scoreFlat(p, t, n, mode))), nil
	default:
		return nil, errors.Errorf("unsupported dtype %v for predicted boxes: must be %v or %v",
			pred.Dtype(), tensor.Float32, tensor.Float64)
	}
}

// scoreFlat runs the kernel over flat (N*4) backing slices.
func scoreFlat[T float](pred, truth []T, n int, mode Mode) []T {
	scores := make([]T, n)
	for i := 0; i < n; i++ {
		scores[i] = score(
			[4]T{pred[i*4], pred[i*4+1], pred[i*4+2], pred[i*4+3]},
			[4]T{truth[i*4], truth[i*4+1], truth[i*4+2], truth[i*4+3]},
			mode,
		)
	}
	return scores
}

func checkBoxShape(d *tensor.Dense, role string) error {
	if d == nil {
		return errors.Errorf("%s boxes tensor is nil", role)
	}
	shape := d.Shape()
	if len(shape) != 2 || shape[1] != 4 {
		return errors.Errorf("%s boxes tensor has shape %v: must be (N, 4)", role, shape)
	}
	return nil
}

// backingFloat32 extracts a tensor's data as []float32, coercing Float64
// inputs, and rejects non-finite coordinates.
func backingFloat32(d *tensor.Dense, role string) ([]float32, error) {
	switch d.Dtype() {
	case tensor.Float32:
		data := d.Data().([]float32)
		for i, v := range data {
			if math32.IsNaN(v) || math32.IsInf(v, 0) {
				return nil, errors.Errorf("%s box %d has non-finite coordinate %v", role, i/4, v)
			}
		}
		return data, nil
	case tensor.Float64:
		src := d.Data().([]float64)
		data := make([]float32, len(src))
		for i, v := range src {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Errorf("%s box %d has non-finite coordinate %v", role, i/4, v)
			}
			data[i] = float32(v)
		}
		return data, nil
	default:
		return nil, errors.Errorf("unsupported dtype %v for %s boxes: must be %v or %v",
			d.Dtype(), role, tensor.Float32, tensor.Float64)
	}
}

// backingFloat64 extracts a tensor's data as []float64, coercing Float32
// inputs, and rejects non-finite coordinates.
func backingFloat64(d *tensor.Dense, role string) ([]float64, error) {
	switch d.Dtype() {
	case tensor.Float64:
		data := d.Data().([]float64)
		for i, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Errorf("%s box %d has non-finite coordinate %v", role, i/4, v)
			}
		}
		return data, nil
	case tensor.Float32:
		src := d.Data().([]float32)
		data := make([]float64, len(src))
		for i, v := range src {
			if math32.IsNaN(v) || math32.IsInf(v, 0) {
				return nil, errors.Errorf("%s box %d has non-finite coordinate %v", role, i/4, v)
			}
			data[i] = float64(v)
		}
		return data, nil
	default:
		return nil, errors.Errorf("unsupported dtype %v for %s boxes: must be %v or %v",
			d.Dtype(), role, tensor.Float32, tensor.Float64)
	}
}
