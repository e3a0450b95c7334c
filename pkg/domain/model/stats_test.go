package model_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		p        float64
		expected float64
	}{
		{"median of four interpolates", []float64{10, 20, 30, 40}, 50, 25},
		{"unsorted input", []float64{40, 10, 30, 20}, 50, 25},
		{"10th of four", []float64{10, 20, 30, 40}, 10, 13},
		{"90th of four", []float64{10, 20, 30, 40}, 90, 37},
		{"25th of five", []float64{1, 2, 3, 4, 5}, 25, 2},
		{"75th of five", []float64{1, 2, 3, 4, 5}, 75, 4},
		{"single value", []float64{7}, 90, 7},
		{"zero percentile", []float64{3, 1, 2}, 0, 1},
		{"hundredth percentile", []float64{3, 1, 2}, 100, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Percentile(tt.values, tt.p)
			gt.True(t, math.Abs(got-tt.expected) < 1e-9)
		})
	}

	t.Run("empty input is NaN", func(t *testing.T) {
		gt.True(t, math.IsNaN(model.Percentile(nil, 50)))
	})

	t.Run("does not modify input", func(t *testing.T) {
		values := []float64{3, 1, 2}
		_ = model.Percentile(values, 50)
		gt.Equal(t, values, []float64{3, 1, 2})
	})
}
