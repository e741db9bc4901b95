package models

// ResultAnalysis is the display-only reduction over the loaded result
// set. The aggregate statistics stay server-computed.
type ResultAnalysis struct {
	HighestPercentage float64 `json:"highestPercentage"`
	LowestPercentage  float64 `json:"lowestPercentage"`
}

// AnalyzeResults computes the highest and lowest percentage. The
// reduction is undefined over an empty set, so ok reports whether
// there was anything to analyze; callers render a "no submissions"
// state when it is false.
func AnalyzeResults(results []Result) (ResultAnalysis, bool) {
	if len(results) == 0 {
		return ResultAnalysis{}, false
	}
	analysis := ResultAnalysis{
		HighestPercentage: results[0].Percentage,
		LowestPercentage:  results[0].Percentage,
	}
	for _, r := range results[1:] {
		if r.Percentage > analysis.HighestPercentage {
			analysis.HighestPercentage = r.Percentage
		}
		if r.Percentage < analysis.LowestPercentage {
			analysis.LowestPercentage = r.Percentage
		}
	}
	return analysis, true
}

// Grade bands percentages the way the results view displays them.
func Grade(percentage float64) string {
	switch {
	case percentage >= 80:
		return "A"
	case percentage >= 60:
		return "B"
	case percentage >= 40:
		return "C"
	default:
		return "F"
	}
}
