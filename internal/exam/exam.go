// Package exam builds and scores 25-question practice exams (simulacros)
// that follow the official per-topic distribution.
package exam

import (
	"fmt"
	"time"

	"github.com/abhisek/repaso/internal/bank"
)

// Exam format constants.
const (
	Size            = 25
	PassMark        = 15
	DefaultDuration = 45 * time.Minute
)

// Distribution is the number of questions taken from each topic.
var Distribution = map[bank.TopicID]int{1: 10, 2: 3, 3: 2, 4: 3, 5: 7}

// Mode selects how questions are drawn from each topic.
type Mode string

const (
	// ModeOfficial draws uniformly at random.
	ModeOfficial Mode = "official"
	// ModeAdaptive favours questions the learner needs most.
	ModeAdaptive Mode = "adaptive"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeOfficial, ModeAdaptive:
		return m, nil
	default:
		return "", fmt.Errorf("unknown exam mode %q (want official or adaptive)", s)
	}
}

// Shuffler is the randomness source for official mode. *math/rand.Rand
// satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// InsufficientPoolError reports a topic with fewer questions than its quota.
type InsufficientPoolError struct {
	Topic bank.TopicID
	Need  int
	Have  int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("tarea %d lacks questions for an exam: need %d, have %d", e.Topic, e.Need, e.Have)
}

// CheckFeasible reports the first topic, in topic order, whose pool is
// smaller than its quota.
func CheckFeasible(pool *bank.Pool) error {
	for _, id := range bank.TopicIDs {
		need := Distribution[id]
		if have := len(pool.ByTopic(id)); have < need {
			return &InsufficientPoolError{Topic: id, Need: need, Have: have}
		}
	}
	return nil
}
