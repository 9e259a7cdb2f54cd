// Package history picks past day plans to resurface next to the current
// view.
package history

import (
	"math/rand/v2"
	"sync"
	"time"

	"lifeplan/entities"
	"lifeplan/pkg/period"
)

// OnThisDay finds the most recent day plan from an earlier or later year
// that shares target's month and day.
func OnThisDay(plans []entities.Plan, target time.Time) *entities.Plan {
	var best *entities.Plan
	var bestYear int
	for i := range plans {
		p := &plans[i]
		if p.Type != entities.PlanDay {
			continue
		}
		d, err := period.ParseDate(p.Date)
		if err != nil {
			continue
		}
		if d.Month() != target.Month() || d.Day() != target.Day() || d.Year() == target.Year() {
			continue
		}
		if best == nil || d.Year() > bestYear {
			best, bestYear = p, d.Year()
		}
	}
	return best
}

// Sampler draws random past plans. The source is injected so tests can
// seed it. Safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// RandomPast picks uniformly among day plans dated strictly before today,
// skipping any plan in exclude. Nil entries in exclude are ignored.
func (s *Sampler) RandomPast(plans []entities.Plan, today time.Time, exclude ...*entities.Plan) *entities.Plan {
	cutoff := period.Format(period.Normalize(period.Day, today))
	skip := make(map[string]bool, len(exclude))
	for _, p := range exclude {
		if p != nil {
			skip[p.ID] = true
		}
	}

	var candidates []*entities.Plan
	for i := range plans {
		p := &plans[i]
		// YYYY-MM-DD compares correctly as a string
		if p.Type != entities.PlanDay || p.Date >= cutoff || skip[p.ID] {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil
	}
	s.mu.Lock()
	i := s.rng.IntN(len(candidates))
	s.mu.Unlock()
	return candidates[i]
}
