package search

import (
	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/move"
)

// fold accumulates the extremal child of a node. The zero value is not
// usable; see newFold.
type fold struct {
	maximizing bool
	best       Result
	seen       bool
}

func newFold(maximizing bool) fold {
	return fold{maximizing: maximizing, best: noMoves(maximizing)}
}

// step folds in a child's score. The first child is always taken, and
// after that only a strictly better score replaces the best, so ties go
// to the earlier move. stop is true when score is the decisive sentinel for
// this node, in which case no sibling can do better.
func (f fold) step(score float64, m move.Move) (next fold, stop bool) {
	if !f.seen || f.better(score) {
		f.best = Result{Score: score, Move: m}
		f.seen = true
	}
	return f, f.decisive(score)
}

func (f fold) better(score float64) bool {
	if f.maximizing {
		return score > f.best.Score
	}
	return score < f.best.Score
}

func (f fold) decisive(score float64) bool {
	if f.maximizing {
		return score == equity.Win
	}
	return score == equity.Loss
}
