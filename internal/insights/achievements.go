package insights

import (
	"fmt"
	"sort"

	"treasurebook-backend/internal/records"
)

const (
	maxRecentAchievements  = 5
	academicAchievementMin = 80
)

type achievementItem struct {
	text     string
	category string
	date     int64
}

// ExtractAchievements pools achievements from academic, extracurricular and sports records.
// An academic record counts when it names an achievement or scores above 80%.
func ExtractAchievements(academic, extracurricular, sports []records.Record) AchievementSummary {
	return summarizeAchievements(
		projectAll(academic, projectAcademic),
		projectAll(extracurricular, projectExtracurricular),
		projectAll(sports, projectSports),
	)
}

func summarizeAchievements(academic []academicRecord, extracurricular, sports []activityRecord) AchievementSummary {
	var items []achievementItem
	for _, a := range academic {
		switch {
		case a.Achievement != "":
			items = append(items, achievementItem{text: a.Achievement, category: string(records.Academic), date: a.Date})
		case a.Score > academicAchievementMin:
			subject := a.Subject
			if subject == "" {
				subject = "a test"
			}
			items = append(items, achievementItem{
				text:     fmt.Sprintf("Scored %.0f%% in %s", a.Score, subject),
				category: string(records.Academic),
				date:     a.Date,
			})
		}
	}
	for _, group := range []struct {
		category records.Collection
		items    []activityRecord
	}{
		{records.Extracurricular, extracurricular},
		{records.Sports, sports},
	} {
		for _, it := range group.items {
			if it.Achievement != "" {
				items = append(items, achievementItem{text: it.Achievement, category: string(group.category), date: it.Date})
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].date > items[j].date
	})

	out := AchievementSummary{
		Recent:     make([]string, 0, maxRecentAchievements),
		ByCategory: make(map[string]int),
	}
	for _, it := range items {
		out.ByCategory[it.category]++
		if len(out.Recent) < maxRecentAchievements {
			out.Recent = append(out.Recent, it.text)
		}
	}
	return out
}
