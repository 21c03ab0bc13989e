// Package equity holds the position evaluators used at the leaves of the
// search tree.
package equity

import (
	"math"

	"github.com/domino14/isolation/game"
)

var (
	// Win is the score of a position the evaluated player has already won.
	Win = math.Inf(1)
	// Loss is the score of a position the evaluated player has already lost.
	Loss = math.Inf(-1)
)

// Evaluator scores a state from the point of view of player p. Higher is
// better for p.
type Evaluator interface {
	// Score returns Loss if p has lost in st, Win if p has won, and a
	// finite heuristic otherwise.
	Score(st game.State, p game.Player) float64
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(st game.State, p game.Player) float64

func (f EvaluatorFunc) Score(st game.State, p game.Player) float64 {
	return f(st, p)
}

// IsDecisive returns true for the Win and Loss sentinels.
func IsDecisive(score float64) bool {
	return math.IsInf(score, 0)
}
