package insights

import (
	"fmt"
	"sort"

	"treasurebook-backend/internal/records"
)

const (
	maxPendingGoals      = 3
	maxPositiveFeedback  = 3
	maxImprovementAreas  = 2
	defaultJournalAdvice = "Encourage regular journaling to understand emotional patterns over time."
)

var (
	positiveMoods = map[string]bool{
		"happy": true, "excited": true, "calm": true, "proud": true,
		"content": true, "grateful": true, "joyful": true, "confident": true,
	}
	difficultMoods = map[string]bool{
		"sad": true, "anxious": true, "angry": true, "stressed": true,
		"worried": true, "frustrated": true, "upset": true, "lonely": true,
	}
	priorityRank = map[string]int{"high": 3, "medium": 2, "low": 1}
)

// ExtractEmotional summarizes journal entries.
func ExtractEmotional(recs []records.Record) EmotionalSummary {
	return summarizeEmotional(projectAll(recs, projectJournal))
}

// ExtractGoals summarizes goal records.
func ExtractGoals(recs []records.Record) GoalSummary {
	return summarizeGoals(projectAll(recs, projectGoal))
}

// ExtractFeedback summarizes teacher feedback records.
func ExtractFeedback(recs []records.Record) FeedbackSummary {
	return summarizeFeedback(projectAll(recs, projectFeedback))
}

func summarizeEmotional(items []journalRecord) EmotionalSummary {
	counts := make(map[string]int)
	var (
		order   []string
		current string
		latest  int64
	)
	for _, it := range items {
		if it.Mood == "" {
			continue
		}
		if current == "" || it.Date > latest {
			current, latest = it.Mood, it.Date
		}
		if counts[it.Mood] == 0 {
			order = append(order, it.Mood)
		}
		counts[it.Mood]++
	}
	if current == "" {
		return EmotionalSummary{
			CurrentMood:    NotAvailable,
			MoodHistory:    []MoodCount{},
			Recommendation: defaultJournalAdvice,
		}
	}

	history := make([]MoodCount, 0, len(order))
	for _, mood := range order {
		history = append(history, MoodCount{Mood: mood, Count: counts[mood]})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Count > history[j].Count
	})

	rec := defaultJournalAdvice
	switch {
	case positiveMoods[current]:
		rec = "Your child seems to be in a good place; keep celebrating the small wins together."
	case difficultMoods[current]:
		rec = "Check in gently about how your child is feeling and make time to talk."
	}
	return EmotionalSummary{CurrentMood: current, MoodHistory: history, Recommendation: rec}
}

func summarizeGoals(items []goalRecord) GoalSummary {
	out := GoalSummary{Pending: []string{}}
	var pending []goalRecord
	for _, it := range items {
		if it.Completed {
			out.Completed++
			continue
		}
		if it.Title != "" {
			pending = append(pending, it)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return priorityRank[pending[i].Priority] > priorityRank[pending[j].Priority]
	})
	for _, it := range pending {
		if len(out.Pending) == maxPendingGoals {
			break
		}
		out.Pending = append(out.Pending, it.Title)
	}

	switch {
	case len(out.Pending) > 0:
		out.Recommendation = fmt.Sprintf("Focus on %q next and break it into small weekly steps.", out.Pending[0])
	case out.Completed > 0:
		out.Recommendation = "Great job completing goals! Set a new challenge to keep growing."
	default:
		out.Recommendation = "Set a small, achievable goal together to build momentum."
	}
	return out
}

func summarizeFeedback(items []feedbackRecord) FeedbackSummary {
	out := FeedbackSummary{Positive: []string{}, AreasOfImprovement: []string{}}
	for _, it := range items {
		out.Positive = appendCapped(out.Positive, maxPositiveFeedback, it.Positive...)
		out.AreasOfImprovement = appendCapped(out.AreasOfImprovement, maxImprovementAreas, it.Improvements...)
	}
	switch {
	case len(out.AreasOfImprovement) > 0:
		out.Recommendation = fmt.Sprintf("Work on %s with support from teachers.", out.AreasOfImprovement[0])
	case len(out.Positive) > 0:
		out.Recommendation = "Keep building on the positive feedback from teachers."
	default:
		out.Recommendation = "Ask teachers for regular feedback to track progress."
	}
	return out
}

// appendCapped appends items not already present until dst holds limit entries.
func appendCapped(dst []string, limit int, items ...string) []string {
	for _, item := range items {
		if len(dst) >= limit {
			break
		}
		dup := false
		for _, existing := range dst {
			if existing == item {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, item)
		}
	}
	return dst
}
