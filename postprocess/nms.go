// Package postprocess - Non-Maximum Suppression over scored detections.
package postprocess

import (
	"sort"

	"github.com/nvr-ai/go-iou/boxes"
)

// Detection represents a single scored detection.
type Detection struct {
	// The bounding box of the detection.
	Box boxes.Box
	// The confidence score of the detection.
	Score float32
	// The predicted class index of the detection.
	Class int
	// Optional human-readable class label.
	Label string
}

// NMSConfig defines parameters for Non-Maximum Suppression.
type NMSConfig struct {
	IoUThreshold  float32 // Overlap threshold above which a box is suppressed.
	ClassAware    bool    // If true, suppress only within the same class.
	MaxDetections int     // Cap on kept detections; 0 means no cap.
}

// Apply filters overlapping detections with greedy Non-Maximum
// Suppression: detections are visited in descending score order, and each
// kept detection suppresses every remaining one whose IoU with it exceeds
// the threshold.
//
// Arguments:
//   - detections: Detections in any order; the input slice is not mutated.
//   - config: Suppression parameters.
//
// Returns:
//   - Kept detections, highest score first. Nil if no detections were
//     provided.
func Apply(detections []Detection, config NMSConfig) []Detection {
	n := len(detections)
	if n == 0 {
		return nil
	}

	ordered := make([]Detection, n)
	copy(ordered, detections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	filtered := make([]Detection, 0, n)
	used := make([]bool, n)

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}

		anchor := ordered[i]
		filtered = append(filtered, anchor)
		used[i] = true
		if config.MaxDetections > 0 && len(filtered) >= config.MaxDetections {
			break
		}

		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			if config.ClassAware && anchor.Class != ordered[j].Class {
				continue
			}
			if anchor.Box.IoU(ordered[j].Box) > config.IoUThreshold {
				used[j] = true
			}
		}
	}

	return filtered
}
