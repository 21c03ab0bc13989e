package search

import (
	"context"
	"math"

	"github.com/domino14/isolation/game"
)

// AlphaBeta is Minimax with alpha-beta pruning. The window is fail-soft: a
// node that prunes returns the child score that caused the cutoff. With a
// full window the result is identical to Minimax.
func (s *Solver) AlphaBeta(ctx context.Context, dl Deadline, st game.State, depth int,
	alpha, beta float64, maximizing bool) (Result, error) {

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
			r, err := s.AlphaBeta(ctx, dl, child, depth-1, alpha, beta, !maximizing)
			if err != nil {
				return Result{}, err
			}
			score = r.Score
		}
		var stop bool
		if f, stop = f.step(score, m); stop {
			break
		}
		if maximizing {
			if score >= beta {
				return Result{Score: score, Move: m}, nil
			}
			alpha = math.Max(alpha, f.best.Score)
		} else {
			if score <= alpha {
				return Result{Score: score, Move: m}, nil
			}
			beta = math.Min(beta, f.best.Score)
		}
	}
	return f.best, nil
}
