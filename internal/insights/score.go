package insights

import "math"

var gradeBands = []struct {
	min   float64
	grade string
}{
	{90, "A"},
	{80, "B+"},
	{70, "B"},
	{60, "C+"},
	{50, "C"},
	{40, "D"},
}

// NormalizeScore converts a score to a 0-100 percentage. A record without a usable
// maxScore is taken to already be a percentage.
func NormalizeScore(score, maxScore float64, isPercentage bool) float64 {
	if isPercentage || maxScore <= 0 {
		return score
	}
	return score / maxScore * 100
}

// DeriveGrade maps a normalized score to a letter grade. Band lower bounds are inclusive.
func DeriveGrade(score float64) string {
	for _, band := range gradeBands {
		if score >= band.min {
			return band.grade
		}
	}
	return "F"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
