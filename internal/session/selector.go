package session

import (
	"math/rand"
	"time"

	"github.com/econplay/econquiz/internal/bank"
)

// SelectQuestions builds the run order for one session. Questions at or
// below the requested level are eligible (higher levels always include
// the easier material); when none qualify the entire pool is used
// instead, so a non-empty pool never produces an empty run. The result
// is a uniformly shuffled copy and the caller's pool is never
// reordered. Only an empty pool yields an empty run.
func SelectQuestions(pool []bank.Question, level int, rng *rand.Rand) []bank.Question {
	if len(pool) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	run := make([]bank.Question, 0, len(pool))
	for _, q := range pool {
		if q.Level <= level {
			run = append(run, q)
		}
	}
	if len(run) == 0 {
		run = append(run, pool...)
	}

	rng.Shuffle(len(run), func(i, j int) {
		run[i], run[j] = run[j], run[i]
	})
	return run
}
