// Package mastery rolls per-question review state up into coverage and
// mastery metrics and a coarse learner level.
package mastery

import (
	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/localdate"
	"github.com/abhisek/repaso/internal/review"
)

// Level is the learner's coarse readiness for the exam.
type Level string

const (
	LevelBeginner     Level = "Principiante"
	LevelIntermediate Level = "Intermedio"
	LevelAdvanced     Level = "Avanzado"
	LevelReady        Level = "Listo"
)

// Level thresholds, checked in order.
const (
	BeginnerCoverage     = 0.15
	IntermediateMastery  = 0.35
	AdvancedMastery      = 0.70
	farReviewDays        = 7
	masteredStabilityMin = 7.0
)

var descriptions = map[Level]string{
	LevelBeginner:     "Estás empezando. Lo importante es la constancia.",
	LevelIntermediate: "Vas bien. Mantén los repasos al día para avanzar.",
	LevelAdvanced:     "Estás cerca. Refuerza fallos y haz algún simulacro.",
	LevelReady:        "Muy bien. Mantén repasos hasta el examen.",
}

// Description returns the fixed message shown for l.
func (l Level) Description() string {
	return descriptions[l]
}

// Summary is the result of ComputeLevel.
type Summary struct {
	Level       Level
	Description string
	Total       int
	Seen        int
	Mastered    int
	Coverage    float64
	Mastery     float64
}

// IsMasteredForLevel is the mastery rule used for level computation. It
// accepts everything review.IsMastered does, plus questions scheduled at
// least a week past today and questions whose stability reached a week.
func IsMasteredForLevel(s *review.State, today string) bool {
	if s == nil {
		return false
	}
	if review.IsMastered(s) {
		return true
	}
	if far, err := localdate.AddDays(today, farReviewDays); err == nil && s.NextReviewAt >= far {
		return true
	}
	return s.Card.Stability >= masteredStabilityMin
}

// CountMastered counts pool questions that satisfy IsMasteredForLevel.
func CountMastered(pool *bank.Pool, m review.Map, today string) int {
	n := 0
	for _, q := range pool.Questions() {
		if IsMasteredForLevel(m[q.ID], today) {
			n++
		}
	}
	return n
}

// CountSeen counts pool questions that have a review state.
func CountSeen(pool *bank.Pool, m review.Map) int {
	n := 0
	for _, q := range pool.Questions() {
		if m[q.ID] != nil {
			n++
		}
	}
	return n
}

// ComputeLevel derives the learner level from coverage (seen/total) and
// mastery (mastered/total). Both ratios are zero for an empty pool.
func ComputeLevel(pool *bank.Pool, m review.Map, today string) Summary {
	s := Summary{
		Total:    pool.Len(),
		Seen:     CountSeen(pool, m),
		Mastered: CountMastered(pool, m, today),
	}
	if s.Total > 0 {
		s.Coverage = float64(s.Seen) / float64(s.Total)
		s.Mastery = float64(s.Mastered) / float64(s.Total)
	}

	switch {
	case s.Coverage < BeginnerCoverage:
		s.Level = LevelBeginner
	case s.Mastery < IntermediateMastery:
		s.Level = LevelIntermediate
	case s.Mastery < AdvancedMastery:
		s.Level = LevelAdvanced
	default:
		s.Level = LevelReady
	}
	s.Description = s.Level.Description()
	return s
}
