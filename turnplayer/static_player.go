package turnplayer

import (
	"context"
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
	"github.com/domino14/isolation/search"
)

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct{}

func (RandomPlayer) GetMove(_ context.Context, _ game.State, legalMoves []move.Move,
	_ search.Deadline) move.Move {
	if len(legalMoves) == 0 {
		return move.NoMove
	}
	return legalMoves[frand.Intn(len(legalMoves))]
}

func (RandomPlayer) String() string { return "random" }

// GreedyPlayer plays the move that scores best one ply ahead, with no
// regard for the clock. Ties go to the earlier move.
type GreedyPlayer struct {
	Evaluator     equity.Evaluator
	EvaluatorName string
}

func (g GreedyPlayer) GetMove(_ context.Context, st game.State, legalMoves []move.Move,
	_ search.Deadline) move.Move {
	best := move.NoMove
	bestScore := equity.Loss
	for _, m := range legalMoves {
		score := g.Evaluator.Score(st.ForecastMove(m), st.ActivePlayer())
		if best.IsNoMove() || score > bestScore {
			best, bestScore = m, score
		}
	}
	return best
}

func (g GreedyPlayer) String() string {
	return fmt.Sprintf("greedy (%s)", g.EvaluatorName)
}
