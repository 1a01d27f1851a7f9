package insights

import (
	"sort"

	"treasurebook-backend/internal/records"
)

// ExtractAcademic summarizes academic records.
func ExtractAcademic(recs []records.Record) AcademicSummary {
	return summarizeAcademic(projectAll(recs, projectAcademic))
}

func summarizeAcademic(items []academicRecord) AcademicSummary {
	if len(items) == 0 {
		return AcademicSummary{
			StrongSubject: NotAvailable,
			StrongGrade:   NotAvailable,
			WeakSubject:   NotAvailable,
			WeakGrade:     NotAvailable,
			SubjectScores: []SubjectScore{},
		}
	}

	type group struct {
		total float64
		n     int
		grade string
	}
	var (
		total float64
		order []string
	)
	groups := make(map[string]*group)
	for _, it := range items {
		total += it.Score
		if it.Subject == "" {
			continue
		}
		g, ok := groups[it.Subject]
		if !ok {
			g = &group{}
			groups[it.Subject] = g
			order = append(order, it.Subject)
		}
		g.total += it.Score
		g.n++
		if g.grade == "" {
			g.grade = it.Grade
		}
	}

	scores := make([]SubjectScore, 0, len(order))
	for _, subject := range order {
		g := groups[subject]
		avg := round2(g.total / float64(g.n))
		grade := g.grade
		if grade == "" {
			grade = DeriveGrade(avg)
		}
		scores = append(scores, SubjectScore{Subject: subject, Score: avg, Grade: grade})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	out := AcademicSummary{
		AverageScore:  round2(total / float64(len(items))),
		StrongSubject: NotAvailable,
		StrongGrade:   NotAvailable,
		WeakSubject:   NotAvailable,
		WeakGrade:     NotAvailable,
		SubjectScores: scores,
		RecordCount:   len(items),
	}
	if len(scores) > 0 {
		strong, weak := scores[0], scores[len(scores)-1]
		out.StrongSubject, out.StrongGrade = strong.Subject, strong.Grade
		out.WeakSubject, out.WeakGrade = weak.Subject, weak.Grade
	}
	return out
}
