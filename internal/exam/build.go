package exam

import (
	"errors"
	"slices"
	"strings"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/review"
)

// Need-weight bonuses for adaptive mode.
const (
	baseWeight      = 1
	dueBonus        = 4
	weakBonus       = 3
	shortBonus      = 2
	mediumBonus     = 1
	shortIntervalD  = 7
	mediumIntervalD = 30
)

// Build selects Size question ids, topic by topic in topic order. Official
// mode shuffles each topic with rng and takes its quota. Adaptive mode takes
// the highest need weights, ties by id; rng is unused and may be nil.
func Build(pool *bank.Pool, m review.Map, today string, mode Mode, rng Shuffler) ([]string, error) {
	if mode == ModeOfficial && rng == nil {
		return nil, errors.New("official exam needs a randomness source")
	}

	ids := make([]string, 0, Size)
	for _, topic := range bank.TopicIDs {
		need := Distribution[topic]
		candidates := topicIDs(pool, topic)
		if len(candidates) < need {
			return nil, &InsufficientPoolError{Topic: topic, Need: need, Have: len(candidates)}
		}

		switch mode {
		case ModeOfficial:
			rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})
		case ModeAdaptive:
			byNeed(candidates, m, today)
		default:
			return nil, errors.New("unknown exam mode " + string(mode))
		}
		ids = append(ids, candidates[:need]...)
	}
	return ids, nil
}

// Weight is the adaptive need weight of one question.
func Weight(s *review.State, today string) int {
	if s == nil {
		return baseWeight
	}
	w := baseWeight
	if review.IsDue(s.NextReviewAt, today, s.LastSeenAt) {
		w += dueBonus
	}
	if review.IsWeak(s, today) {
		w += weakBonus
	}
	switch d := s.Card.ScheduledDays; {
	case d < shortIntervalD:
		w += shortBonus
	case d < mediumIntervalD:
		w += mediumBonus
	}
	return w
}

// byNeed orders ids by descending weight, then id. Taking the head of the
// result is the same as repeatedly taking the heaviest remaining question.
func byNeed(ids []string, m review.Map, today string) {
	weights := make(map[string]int, len(ids))
	for _, id := range ids {
		weights[id] = Weight(m[id], today)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if weights[a] != weights[b] {
			return weights[b] - weights[a]
		}
		return strings.Compare(a, b)
	})
}

func topicIDs(pool *bank.Pool, topic bank.TopicID) []string {
	qs := pool.ByTopic(topic)
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
