package records

import (
	"errors"
	"strings"
)

// Collection names one category of student records.
type Collection string

const (
	Academic        Collection = "academic"
	Extracurricular Collection = "extracurricular"
	Sports          Collection = "sports"
	Journal         Collection = "journal"
	Goals           Collection = "goals"
	Feedback        Collection = "feedback"
	Profile         Collection = "profile"
)

var ErrUnknownCollection = errors.New("unknown collection")

// All lists every collection the insights engine reads.
func All() []Collection {
	return []Collection{Academic, Extracurricular, Sports, Journal, Goals, Feedback, Profile}
}

// ParseCollection normalizes a collection name.
func ParseCollection(raw string) (Collection, error) {
	c := Collection(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range All() {
		if c == known {
			return c, nil
		}
	}
	return "", ErrUnknownCollection
}

// Record is one loosely-typed document as stored by the host application.
type Record map[string]any

// Set holds every collection fetched for one student.
type Set struct {
	Academic        []Record
	Extracurricular []Record
	Sports          []Record
	Journal         []Record
	Goals           []Record
	Feedback        []Record
	Profile         []Record
}

func (s *Set) slot(c Collection) *[]Record {
	switch c {
	case Academic:
		return &s.Academic
	case Extracurricular:
		return &s.Extracurricular
	case Sports:
		return &s.Sports
	case Journal:
		return &s.Journal
	case Goals:
		return &s.Goals
	case Feedback:
		return &s.Feedback
	case Profile:
		return &s.Profile
	default:
		return nil
	}
}

// Get returns the records of one collection.
func (s Set) Get(c Collection) []Record {
	if p := s.slot(c); p != nil {
		return *p
	}
	return nil
}
