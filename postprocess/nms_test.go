package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-iou/boxes"
)

// TestApply_SuppressesOverlaps checks that a lower-scored box heavily
// overlapping a higher-scored one is dropped while a distant box survives.
func TestApply_SuppressesOverlaps(t *testing.T) {
	detections := []Detection{
		{Box: boxes.Box{Y1: 0, X1: 0, Y2: 100, X2: 100}, Score: 0.9, Class: 1, Label: "person"},
		{Box: boxes.Box{Y1: 5, X1: 5, Y2: 105, X2: 105}, Score: 0.8, Class: 1, Label: "person"},
		{Box: boxes.Box{Y1: 300, X1: 300, Y2: 400, X2: 400}, Score: 0.7, Class: 2, Label: "car"},
	}

	kept := Apply(detections, NMSConfig{IoUThreshold: 0.5})
	require.Len(t, kept, 2, "overlapping duplicate should be suppressed")
	assert.Equal(t, float32(0.9), kept[0].Score, "highest score kept first")
	assert.Equal(t, "car", kept[1].Label, "distant detection should survive")
}

// TestApply_ClassAware keeps overlapping boxes of different classes when
// suppression is class-aware.
func TestApply_ClassAware(t *testing.T) {
	detections := []Detection{
		{Box: boxes.Box{Y1: 0, X1: 0, Y2: 100, X2: 100}, Score: 0.9, Class: 1},
		{Box: boxes.Box{Y1: 0, X1: 0, Y2: 100, X2: 100}, Score: 0.8, Class: 2},
	}

	kept := Apply(detections, NMSConfig{IoUThreshold: 0.5, ClassAware: true})
	assert.Len(t, kept, 2, "different classes should not suppress each other")

	kept = Apply(detections, NMSConfig{IoUThreshold: 0.5})
	assert.Len(t, kept, 1, "class-agnostic suppression should drop the duplicate")
}

func TestApply_OrdersByScore(t *testing.T) {
	detections := []Detection{
		{Box: boxes.Box{Y1: 200, X1: 200, Y2: 210, X2: 210}, Score: 0.3},
		{Box: boxes.Box{Y1: 0, X1: 0, Y2: 10, X2: 10}, Score: 0.95},
		{Box: boxes.Box{Y1: 100, X1: 100, Y2: 110, X2: 110}, Score: 0.6},
	}

	kept := Apply(detections, NMSConfig{IoUThreshold: 0.5})
	require.Len(t, kept, 3)
	assert.Equal(t, float32(0.95), kept[0].Score)
	assert.Equal(t, float32(0.6), kept[1].Score)
	assert.Equal(t, float32(0.3), kept[2].Score)
}

func TestApply_MaxDetections(t *testing.T) {
	detections := []Detection{
		{Box: boxes.Box{Y1: 0, X1: 0, Y2: 10, X2: 10}, Score: 0.9},
		{Box: boxes.Box{Y1: 100, X1: 100, Y2: 110, X2: 110}, Score: 0.8},
		{Box: boxes.Box{Y1: 200, X1: 200, Y2: 210, X2: 210}, Score: 0.7},
	}

	kept := Apply(detections, NMSConfig{IoUThreshold: 0.5, MaxDetections: 2})
	assert.Len(t, kept, 2, "cap should limit kept detections")
}

func TestApply_Empty(t *testing.T) {
	assert.Nil(t, Apply(nil, NMSConfig{IoUThreshold: 0.5}), "no detections yields nil")
}
