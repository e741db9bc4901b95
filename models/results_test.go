package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeResults(t *testing.T) {
	t.Run("empty set is guarded", func(t *testing.T) {
		analysis, ok := AnalyzeResults(nil)
		assert.False(t, ok)
		assert.Zero(t, analysis)

		analysis, ok = AnalyzeResults([]Result{})
		assert.False(t, ok)
		assert.Zero(t, analysis)
	})

	t.Run("single result", func(t *testing.T) {
		analysis, ok := AnalyzeResults([]Result{{Percentage: 55}})
		assert.True(t, ok)
		assert.Equal(t, 55.0, analysis.HighestPercentage)
		assert.Equal(t, 55.0, analysis.LowestPercentage)
	})

	t.Run("several results", func(t *testing.T) {
		analysis, ok := AnalyzeResults([]Result{
			{Percentage: 62.5},
			{Percentage: 91},
			{Percentage: 33.4},
			{Percentage: 75},
		})
		assert.True(t, ok)
		assert.Equal(t, 91.0, analysis.HighestPercentage)
		assert.Equal(t, 33.4, analysis.LowestPercentage)
	})
}

func TestGrade(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{95, "A"},
		{80, "A"},
		{79.9, "B"},
		{60, "B"},
		{59, "C"},
		{40, "C"},
		{39.9, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.percentage), "percentage %v", tt.percentage)
	}
}
