package recommend

import "math"

// DetectOverloaded flags developers whose new-item count exceeds
// max(avgNew*OverloadFactor, OverloadMinimum). Small teams rarely cross that
// bar, so when nobody does the developers tied for the highest new count are
// returned instead, provided that count reaches OverloadFallbackMin.
func DetectOverloaded(w Workload, weights Weights) map[string]bool {
	threshold := math.Max(w.AvgNewCount*weights.OverloadFactor, weights.OverloadMinimum)

	overloaded := make(map[string]bool)
	maxNew := 0
	for _, name := range w.Developers {
		n := w.ByDeveloper[name].New
		if float64(n) > threshold {
			overloaded[name] = true
		}
		if n > maxNew {
			maxNew = n
		}
	}

	if len(overloaded) > 0 || maxNew < weights.OverloadFallbackMin {
		return overloaded
	}

	for _, name := range w.Developers {
		if w.ByDeveloper[name].New == maxNew {
			overloaded[name] = true
		}
	}
	return overloaded
}
