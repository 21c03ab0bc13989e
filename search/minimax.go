package search

import (
	"context"

	"github.com/domino14/isolation/game"
)

// Minimax searches st to the given depth. maximizing is true when the
// solver's player is the side to move.
func (s *Solver) Minimax(ctx context.Context, dl Deadline, st game.State, depth int,
	maximizing bool) (Result, error) {

	if depth < 1 {
		return Result{}, ErrInvalidDepth
	}
	if err := s.checkTime(ctx, dl); err != nil {
		return Result{}, err
	}
	legal := st.LegalMoves()
	if len(legal) == 0 {
		return noMoves(maximizing), nil
	}
	f := newFold(maximizing)
	for _, m := range legal {
		child := st.ForecastMove(m)
		var score float64
		if depth == 1 {
			score = s.evaluator.Score(child, s.player)
		} else {
			r, err := s.Minimax(ctx, dl, child, depth-1, !maximizing)
			if err != nil {
				return Result{}, err
			}
			score = r.Score
		}
		var stop bool
		if f, stop = f.step(score, m); stop {
			break
		}
	}
	return f.best, nil
}
