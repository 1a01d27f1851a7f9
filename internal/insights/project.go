package insights

import (
	"strings"

	"treasurebook-backend/internal/records"
)

// Typed views of raw records. Every read from a loosely-typed record happens here.

type academicRecord struct {
	Subject     string
	Score       float64
	Grade       string
	Achievement string
	Date        int64
}

type activityRecord struct {
	Name        string
	Category    string
	Description string
	Achievement string
	Date        int64
}

type journalRecord struct {
	Mood string
	Date int64
}

type goalRecord struct {
	Title     string
	Priority  string
	Completed bool
}

type feedbackRecord struct {
	Positive     []string
	Improvements []string
}

type profileRecord struct {
	Name   string
	Grade  string
	Age    float64
	HasAge bool
}

func projectAcademic(r records.Record) academicRecord {
	score, _ := num(r, "score", "marks")
	maxScore, _ := num(r, "maxScore", "totalMarks")
	return academicRecord{
		Subject:     str(r, "subject"),
		Score:       NormalizeScore(score, maxScore, flag(r, "isPercentage")),
		Grade:       str(r, "grade"),
		Achievement: str(r, "achievement"),
		Date:        timestamp(r, "date", "examDate", "createdAt"),
	}
}

func projectExtracurricular(r records.Record) activityRecord {
	return activityRecord{
		Name:        str(r, "activity", "name", "title"),
		Category:    str(r, "category", "type"),
		Description: str(r, "description"),
		Achievement: str(r, "achievement"),
		Date:        timestamp(r, "date", "createdAt"),
	}
}

func projectSports(r records.Record) activityRecord {
	return activityRecord{
		Name:        str(r, "sport", "name"),
		Category:    str(r, "level", "category"),
		Description: str(r, "description"),
		Achievement: str(r, "achievement"),
		Date:        timestamp(r, "date", "createdAt"),
	}
}

func projectJournal(r records.Record) journalRecord {
	return journalRecord{
		Mood: strings.ToLower(str(r, "mood")),
		Date: timestamp(r, "date", "createdAt"),
	}
}

func projectGoal(r records.Record) goalRecord {
	status := strings.ToLower(str(r, "status"))
	return goalRecord{
		Title:     str(r, "title", "goal", "name"),
		Priority:  strings.ToLower(str(r, "priority")),
		Completed: flag(r, "completed") || status == "completed" || status == "done" || status == "achieved",
	}
}

func projectFeedback(r records.Record) feedbackRecord {
	fb := feedbackRecord{
		Positive:     strList(r, "strengths", "positive"),
		Improvements: strList(r, "areasOfImprovement", "improvements"),
	}
	comment := str(r, "comment", "feedback", "text")
	if comment == "" {
		return fb
	}
	switch strings.ToLower(str(r, "type", "sentiment")) {
	case "positive", "praise", "appreciation":
		fb.Positive = append(fb.Positive, comment)
	case "improvement", "negative", "constructive", "concern":
		fb.Improvements = append(fb.Improvements, comment)
	}
	return fb
}

func projectProfile(r records.Record) profileRecord {
	age, ok := num(r, "age")
	return profileRecord{
		Name:   str(r, "name", "childName"),
		Grade:  str(r, "grade", "class"),
		Age:    age,
		HasAge: ok && age > 0,
	}
}

func projectAll[T any](recs []records.Record, fn func(records.Record) T) []T {
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		if r == nil {
			continue
		}
		out = append(out, fn(r))
	}
	return out
}
