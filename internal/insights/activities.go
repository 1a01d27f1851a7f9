package insights

import (
	"fmt"
	"sort"

	"treasurebook-backend/internal/records"
)

const maxDomainAchievements = 3

// ExtractTalent summarizes extracurricular records.
func ExtractTalent(recs []records.Record) TalentSummary {
	return summarizeTalent(projectAll(recs, projectExtracurricular))
}

// ExtractPhysical summarizes sports records.
func ExtractPhysical(recs []records.Record) PhysicalSummary {
	return summarizePhysical(projectAll(recs, projectSports))
}

func summarizeTalent(items []activityRecord) TalentSummary {
	top, count := topByFrequency(items)
	if top == "" {
		return TalentSummary{
			TopActivity:  NotAvailable,
			Achievements: []string{},
			Enjoyment:    "Try a new activity together to discover what your child enjoys most.",
		}
	}
	enjoyment := fmt.Sprintf("Enjoys %s; keep encouraging regular practice.", top)
	if count >= 3 {
		enjoyment = fmt.Sprintf("Shows strong, consistent enthusiasm for %s.", top)
	}
	return TalentSummary{
		TopActivity:  top,
		Achievements: recentAchievements(items, maxDomainAchievements),
		Enjoyment:    enjoyment,
	}
}

func summarizePhysical(items []activityRecord) PhysicalSummary {
	top, _ := topByFrequency(items)
	if top == "" {
		return PhysicalSummary{
			TopSport:       NotAvailable,
			Achievements:   []string{},
			Recommendation: "Aim for at least 30 minutes of physical activity every day.",
		}
	}
	return PhysicalSummary{
		TopSport:       top,
		Achievements:   recentAchievements(items, maxDomainAchievements),
		Recommendation: fmt.Sprintf("Keep up regular %s practice and try one new sport for balance.", top),
	}
}

// topByFrequency returns the most frequent name. Ties go to the name seen first in input order.
func topByFrequency(items []activityRecord) (string, int) {
	counts := make(map[string]int)
	var order []string
	for _, it := range items {
		if it.Name == "" {
			continue
		}
		if counts[it.Name] == 0 {
			order = append(order, it.Name)
		}
		counts[it.Name]++
	}
	var (
		best  string
		bestN int
	)
	for _, name := range order {
		if counts[name] > bestN {
			best, bestN = name, counts[name]
		}
	}
	return best, bestN
}

// recentAchievements returns up to limit achievements, newest first.
func recentAchievements(items []activityRecord, limit int) []string {
	withAchievement := make([]activityRecord, 0, len(items))
	for _, it := range items {
		if it.Achievement != "" {
			withAchievement = append(withAchievement, it)
		}
	}
	sort.SliceStable(withAchievement, func(i, j int) bool {
		return withAchievement[i].Date > withAchievement[j].Date
	})
	out := make([]string, 0, limit)
	for _, it := range withAchievement {
		if len(out) == limit {
			break
		}
		out = append(out, it.Achievement)
	}
	return out
}
