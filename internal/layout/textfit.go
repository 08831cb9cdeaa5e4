package layout

import "strings"

// shrinkStep is the font-size decrement applied per shrink-to-fit iteration.
const shrinkStep = 0.5

// MeasureFunc reports the rendered width of text at a given font size. It is
// injected so the fitting routines stay pure and testable without a real
// drawing surface.
type MeasureFunc func(text string, size float64) float64

// Wrap splits text into lines by greedy word wrap so that every line
// measures at most maxWidth. A single word wider than maxWidth occupies its
// own line rather than being broken mid-word. The result is never empty.
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// ShrinkToFit returns the font size at which text fits within maxWidth,
// starting from baseSize and decrementing in fixed steps down to minSize.
// Text that already fits keeps baseSize; text still too wide at the floor is
// rendered at minSize regardless, never wrapped.
func ShrinkToFit(text string, maxWidth, baseSize, minSize float64, measure MeasureFunc) float64 {
	size := baseSize
	for size > minSize && measure(text, size) > maxWidth {
		size -= shrinkStep
	}
	if size < minSize {
		size = minSize
	}
	return size
}
