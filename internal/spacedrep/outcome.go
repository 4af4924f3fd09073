package spacedrep

// Outcome is the self-reported result of one answer.
type Outcome string

const (
	OutcomeWrong   Outcome = "wrong"
	OutcomeGuessed Outcome = "guessed"
	OutcomeKnew    Outcome = "knew"
)

// Valid reports whether o is one of the three known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeWrong, OutcomeGuessed, OutcomeKnew:
		return true
	}
	return false
}

// Grade is the coarse recall grade handed to the scheduler. The numeric
// values match the FSRS rating scale.
type Grade int

const (
	GradeAgain Grade = 1
	GradeHard  Grade = 2
	GradeGood  Grade = 3
)

// GradeFromOutcome maps an answer outcome onto a scheduler grade.
// Only three grades are ever produced; Easy is never used.
func GradeFromOutcome(o Outcome) Grade {
	switch o {
	case OutcomeWrong:
		return GradeAgain
	case OutcomeGuessed:
		return GradeHard
	default:
		return GradeGood
	}
}

// OutcomeFor combines answer correctness with the learner's confidence tag.
// A correct answer without a "knew" tag counts as guessed.
func OutcomeFor(correct bool, confidence Outcome) Outcome {
	if !correct {
		return OutcomeWrong
	}
	if confidence == OutcomeKnew {
		return OutcomeKnew
	}
	return OutcomeGuessed
}
