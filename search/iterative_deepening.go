package search

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
)

// IterativelyDeepen searches st at depth 1, 2, 3 and so on until it is
// cancelled, a depth proves the game won or lost, the tree can not get any
// deeper, or maxDepth is reached (maxDepth <= 0 means no limit).
//
// It returns the result of the deepest search that finished and that
// depth. If it stopped because it was cancelled, err is the cancellation
// error; the result is still valid, and is move.NoMove at depth 0 if not
// even the first search finished.
//
// Stopping at the first decisive depth means a proven win is played as
// soon as it is found. Searching on to the deadline could instead settle
// on an earlier-generated move whose win only shows at a greater depth.
func (s *Solver) IterativelyDeepen(ctx context.Context, dl Deadline, st game.State,
	maxDepth int) (best Result, depth int, err error) {

	best = Result{Score: equity.Loss, Move: move.NoMove}
	for d := 1; maxDepth <= 0 || d <= maxDepth; d++ {
		log.Debug().Int("depth", d).Msg("deepening-iteratively")
		r, err := s.Search(ctx, dl, st, d)
		if err != nil {
			log.Debug().Int("depth", d).Int("completed-depth", depth).
				Uint64("nodes", s.nodes).Err(err).Msg("search-cancelled")
			return best, depth, err
		}
		best, depth = r, d
		log.Debug().Int("depth", d).Float64("score", r.Score).
			Str("move", r.Move.ShortDescription()).Msg("best-val")

		if equity.IsDecisive(r.Score) || d >= st.NumBlankSpaces() {
			break
		}
	}
	return best, depth, nil
}
