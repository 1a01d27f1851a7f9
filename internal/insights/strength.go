package insights

import "math"

const (
	decisiveAcademicScore = 85
	defaultGrowthScore    = 50
	achievementBonus      = 5
)

// Strength is the resolved headline triple for the snapshot.
type Strength struct {
	TopSkill    string
	WeakArea    string
	GrowthScore int
}

func valid(v string) bool {
	return v != "" && v != NotAvailable
}

// ResolveStrength combines the academic, talent and physical summaries into a top skill,
// a weak area and a 0-100 growth score. Growth follows the academic average whenever any
// academic record exists, even one without a subject.
func ResolveStrength(a AcademicSummary, t TalentSummary, p PhysicalSummary) Strength {
	hasAcademic := valid(a.StrongSubject) && len(a.SubjectScores) > 0
	hasTalent := valid(t.TopActivity)
	hasPhysical := valid(p.TopSport)
	talentWins := len(t.Achievements) > 0
	physicalWins := len(p.Achievements) > 0

	out := Strength{TopSkill: NotEnoughData, WeakArea: NotEnoughData, GrowthScore: defaultGrowthScore}

	switch {
	case hasAcademic && hasTalent && hasPhysical:
		switch {
		case a.SubjectScores[0].Score > decisiveAcademicScore:
			out.TopSkill = a.StrongSubject
		case talentWins && physicalWins:
			out.TopSkill = t.TopActivity + " + " + p.TopSport
		case talentWins:
			out.TopSkill = t.TopActivity
		case physicalWins:
			out.TopSkill = p.TopSport
		default:
			out.TopSkill = a.StrongSubject
		}
	case hasTalent && !hasPhysical:
		out.TopSkill = t.TopActivity
	case hasPhysical && !hasTalent:
		out.TopSkill = p.TopSport
	case hasAcademic:
		out.TopSkill = a.StrongSubject
	case hasTalent && hasPhysical:
		switch {
		case talentWins && physicalWins:
			out.TopSkill = t.TopActivity + " + " + p.TopSport
		case physicalWins && !talentWins:
			out.TopSkill = p.TopSport
		default:
			out.TopSkill = t.TopActivity
		}
	}

	if hasAcademic {
		out.WeakArea = a.WeakSubject
	}
	if hasAcademic || a.RecordCount > 0 {
		score := a.AverageScore
		if talentWins {
			score += achievementBonus
		}
		if physicalWins {
			score += achievementBonus
		}
		out.GrowthScore = int(math.Round(math.Max(0, math.Min(100, score))))
	}
	return out
}
