package turnplayer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
	"github.com/domino14/isolation/search"
)

// SearchStats describes the most recent call to GetMove.
type SearchStats struct {
	Move move.Move
	// Depth is the deepest search that finished.
	Depth     int
	Nodes     uint64
	Elapsed   time.Duration
	Cancelled bool
	Score     float64
	// Book is true when the move came from the opening book.
	Book bool
}

// AIPlayer searches for its moves. It is not safe for concurrent use; give
// every game its own players.
type AIPlayer struct {
	name      string
	settings  Settings
	lastStats SearchStats
}

func NewAIPlayer(name string, settings Settings) (*AIPlayer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		name = "ai"
	}
	return &AIPlayer{name: name, settings: settings}, nil
}

func (p *AIPlayer) String() string {
	return fmt.Sprintf("%s (%v)", p.name, p.settings)
}

func (p *AIPlayer) Settings() Settings {
	return p.settings
}

func (p *AIPlayer) LastStats() SearchStats {
	return p.lastStats
}

// openingMove is the fixed reply for the first move of each player.
func openingMove(st game.State) move.Move {
	return move.New(st.Height()/2, st.Width()/2)
}

// GetMove returns the best move it can find before dl runs out.
func (p *AIPlayer) GetMove(ctx context.Context, st game.State, legalMoves []move.Move,
	dl search.Deadline) move.Move {

	ts := time.Now()
	if st.MoveCount() < 2 {
		m := openingMove(st)
		p.lastStats = SearchStats{Move: m, Book: true}
		return m
	}
	if len(legalMoves) == 0 {
		p.lastStats = SearchStats{Move: move.NoMove, Score: equity.Loss}
		return move.NoMove
	}

	solver := search.NewSolver(st.ActivePlayer(), p.settings.Evaluator, p.settings.Method,
		p.settings.TimerThreshold)

	var best search.Result
	var depth int
	var err error
	if p.settings.Iterative {
		best, depth, err = solver.IterativelyDeepen(ctx, dl, st, p.settings.MaxDepth)
	} else {
		best, err = solver.Search(ctx, dl, st, p.settings.SearchDepth)
		depth = p.settings.SearchDepth
		if err != nil {
			best = search.Result{Score: equity.Loss, Move: move.NoMove}
			depth = 0
		}
	}
	if err != nil && !errors.Is(err, search.ErrSearchCancelled) {
		// Settings are validated up front, so this is a bug.
		log.Error().Err(err).Msg("search-failed")
	}

	p.lastStats = SearchStats{
		Move:      best.Move,
		Depth:     depth,
		Nodes:     solver.Nodes(),
		Elapsed:   time.Since(ts),
		Cancelled: err != nil,
		Score:     best.Score,
	}
	log.Debug().
		Str("player", p.name).
		Str("move", best.Move.ShortDescription()).
		Int("depth", depth).
		Uint64("nodes", solver.Nodes()).
		Bool("cancelled", err != nil).
		Float64("time-elapsed-sec", time.Since(ts).Seconds()).
		Msg("search-returning")
	return best.Move
}
