package search

import (
	"fmt"

	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/move"
)

// Result is the value of a searched node and the move that achieves it.
// Move is move.NoMove only when the node has no legal moves.
type Result struct {
	Score float64
	Move  move.Move
}

func (r Result) String() string {
	return fmt.Sprintf("%v (%g)", r.Move, r.Score)
}

// noMoves is the result of a node whose side to move is stuck: the root
// player has lost if it is their turn, and won otherwise.
func noMoves(maximizing bool) Result {
	if maximizing {
		return Result{Score: equity.Loss, Move: move.NoMove}
	}
	return Result{Score: equity.Win, Move: move.NoMove}
}
