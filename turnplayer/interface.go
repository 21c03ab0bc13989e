package turnplayer

import (
	"context"

	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
	"github.com/domino14/isolation/search"
)

// Player picks a move for the side to move in st. legalMoves are that
// side's legal moves. A Player returns move.NoMove when it has nothing to
// play or ran out of time before it found anything.
type Player interface {
	GetMove(ctx context.Context, st game.State, legalMoves []move.Move, dl search.Deadline) move.Move
	String() string
}

// StatsReporter is implemented by players that search.
type StatsReporter interface {
	LastStats() SearchStats
}
