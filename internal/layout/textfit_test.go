package layout

import (
	"reflect"
	"testing"
)

// charMeasure is a proportional-width stand-in: every rune is width units
// wide per point of font size.
func charMeasure(perChar float64) MeasureFunc {
	return func(text string, size float64) float64 {
		return float64(len(text)) * size * perChar
	}
}

func TestWrap(t *testing.T) {
	measure := func(text string) float64 {
		return float64(len(text))
	}

	tests := []struct {
		name     string
		text     string
		maxWidth float64
		expected []string
	}{
		{
			name:     "Fits on one line",
			text:     "Rate:",
			maxWidth: 20,
			expected: []string{"Rate:"},
		},
		{
			name:     "Wraps at word boundary",
			text:     "Coupons Received:",
			maxWidth: 10,
			expected: []string{"Coupons", "Received:"},
		},
		{
			name:     "Single word wider than limit stays whole",
			text:     "Unbreakable",
			maxWidth: 4,
			expected: []string{"Unbreakable"},
		},
		{
			name:     "Empty text yields one empty line",
			text:     "",
			maxWidth: 10,
			expected: []string{""},
		},
		{
			name:     "Three lines",
			text:     "one two three four five six",
			maxWidth: 11,
			expected: []string{"one two", "three four", "five six"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.maxWidth, measure)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Wrap(%q, %v) = %v, expected %v", tt.text, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestShrinkToFit(t *testing.T) {
	measure := charMeasure(0.5)

	tests := []struct {
		name     string
		text     string
		maxWidth float64
		expected float64
	}{
		{
			name:     "Already fits keeps base size",
			text:     "short",
			maxWidth: 100,
			expected: 9,
		},
		{
			// 20 chars * 0.5 = 10 units per point; fits at 8pt within 80.
			name:     "Shrinks until it fits",
			text:     "12345678901234567890",
			maxWidth: 80,
			expected: 8,
		},
		{
			name:     "Floors at minimum size",
			text:     "a very long value string that can never fit the slot",
			maxWidth: 10,
			expected: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShrinkToFit(tt.text, tt.maxWidth, 9, 6, measure)
			if got != tt.expected {
				t.Errorf("ShrinkToFit(%q, %v) = %v, expected %v", tt.text, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestShrinkToFitMonotonic(t *testing.T) {
	measure := charMeasure(0.5)
	text := "123456789012345678901234567890"

	previous := 9.0
	for width := 130.0; width >= 40; width -= 10 {
		size := ShrinkToFit(text, width, 9, 6, measure)
		if size > previous {
			t.Errorf("size grew from %v to %v as width narrowed to %v", previous, size, width)
		}
		if size > 9 || size < 6 {
			t.Errorf("size %v outside [6, 9] at width %v", size, width)
		}
		previous = size
	}
}
