package turnplayer

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
	"github.com/domino14/isolation/search"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

var expired = search.DeadlineFunc(func() time.Duration { return 0 })

func fixedDepth(depth int) Settings {
	s := DefaultSettings()
	s.Iterative = false
	s.SearchDepth = depth
	return s
}

func getMove(p Player, g *board.GameBoard, dl search.Deadline) move.Move {
	return p.GetMove(context.Background(), g, g.LegalMoves(), dl)
}

func TestOpeningBook(t *testing.T) {
	is := is.New(t)
	p, err := NewAIPlayer("", DefaultSettings())
	is.NoErr(err)

	g := board.MustFromPlaintext(board.EmptyThree)
	is.Equal(getMove(p, g, search.NoDeadline), move.New(1, 1))
	is.True(p.LastStats().Book)

	g = board.NewBoard(7, 5)
	is.Equal(getMove(p, g, expired), move.New(2, 3))
	is.NoErr(g.ApplyMove(move.New(0, 0)))
	is.Equal(getMove(p, g, expired), move.New(2, 3))
	// The book does not look at the board, even if the center is taken.
	g = board.NewBoard(7, 7)
	is.NoErr(g.ApplyMove(move.New(3, 3)))
	is.Equal(getMove(p, g, search.NoDeadline), move.New(3, 3))
}

func TestSingleAndNoMoves(t *testing.T) {
	is := is.New(t)
	for _, s := range []Settings{DefaultSettings(), fixedDepth(3)} {
		p, err := NewAIPlayer("", s)
		is.NoErr(err)
		is.Equal(getMove(p, board.MustFromPlaintext(board.OneWayOut), search.NoDeadline), move.New(2, 1))
		is.Equal(getMove(p, board.MustFromPlaintext(board.StuckCenter), search.NoDeadline), move.NoMove)
		// A lone move is played even when it loses.
		is.Equal(getMove(p, board.MustFromPlaintext(board.DoomedOnlyMove), search.NoDeadline), move.New(2, 0))
		is.Equal(p.LastStats().Score, equity.Loss)
	}
	s := search.NewSolver(game.PlayerOne, equity.ImprovedEvaluator, search.MethodMinimax, 0)
	r, err := s.Minimax(context.Background(), search.NoDeadline,
		board.MustFromPlaintext(board.StuckCenter), 1, true)
	is.NoErr(err)
	is.Equal(r.Score, equity.Loss)
}

func TestCancelledBeforeDepthOne(t *testing.T) {
	is := is.New(t)
	g := board.MustFromPlaintext(board.MidgameFive)
	for _, s := range []Settings{DefaultSettings(), fixedDepth(3)} {
		p, err := NewAIPlayer("", s)
		is.NoErr(err)
		is.Equal(getMove(p, g, expired), move.NoMove)
		st := p.LastStats()
		is.True(st.Cancelled)
		is.Equal(st.Depth, 0)
	}
}

func TestFixedDepthCancelledMidSearch(t *testing.T) {
	is := is.New(t)
	g := board.MustFromPlaintext(board.MidgameFive)
	calls := 0
	dl := search.DeadlineFunc(func() time.Duration {
		calls++
		if calls > 3 {
			return 0
		}
		return time.Hour
	})
	p, err := NewAIPlayer("", fixedDepth(3))
	is.NoErr(err)
	is.Equal(getMove(p, g, dl), move.NoMove)
	is.True(p.LastStats().Cancelled)
}

func TestSearches(t *testing.T) {
	is := is.New(t)
	g := board.MustFromPlaintext(board.MidgameFive)

	s := DefaultSettings()
	s.MaxDepth = 3
	p, err := NewAIPlayer("", s)
	is.NoErr(err)
	m := getMove(p, g, search.NoDeadline)
	is.True(lo.Contains(g.LegalMoves(), m))
	st := p.LastStats()
	is.Equal(st.Depth, 3)
	is.Equal(st.Move, m)
	is.True(!st.Cancelled)
	is.True(st.Nodes > 0)

	p, err = NewAIPlayer("", fixedDepth(2))
	is.NoErr(err)
	m = getMove(p, g, search.NewTurnClock(time.Minute))
	is.True(lo.Contains(g.LegalMoves(), m))
	is.Equal(p.LastStats().Depth, 2)
}

func TestInvalidSettings(t *testing.T) {
	is := is.New(t)
	for _, s := range []Settings{
		fixedDepth(0),
		{Iterative: true},
		func() Settings { s := DefaultSettings(); s.MaxDepth = -1; return s }(),
		func() Settings { s := DefaultSettings(); s.Method = search.Method(7); return s }(),
	} {
		_, err := NewAIPlayer("", s)
		is.True(errors.Is(err, ErrInvalidSettings))
	}
}

func TestSettingsFromConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	s, err := SettingsFromConfig(&cfg)
	is.NoErr(err)
	is.Equal(s.Iterative, true)
	is.Equal(s.Method, search.MethodAlphaBeta)
	is.Equal(s.TimerThreshold, 10*time.Millisecond)
	is.Equal(s.EvaluatorName, "custom")
	is.Equal(s.String(), "alphabeta/custom/iterative")

	cfg.Set(config.ConfigEvaluator, "nope")
	_, err = SettingsFromConfig(&cfg)
	is.True(errors.Is(err, equity.ErrUnknownEvaluator))

	cfg.Set(config.ConfigEvaluator, "improved")
	cfg.Set(config.ConfigSearchMethod, "mcts")
	_, err = SettingsFromConfig(&cfg)
	is.True(errors.Is(err, search.ErrUnknownMethod))
}

func TestStaticPlayers(t *testing.T) {
	is := is.New(t)
	g := board.MustFromPlaintext(board.MidgameFive)
	greedy := GreedyPlayer{Evaluator: equity.ImprovedEvaluator, EvaluatorName: "improved"}
	is.Equal(getMove(greedy, g, expired), move.New(2, 3))

	for i := 0; i < 20; i++ {
		is.True(lo.Contains(g.LegalMoves(), getMove(RandomPlayer{}, g, expired)))
	}
	stuck := board.MustFromPlaintext(board.StuckCenter)
	is.Equal(getMove(RandomPlayer{}, stuck, expired), move.NoMove)
	is.Equal(getMove(greedy, stuck, expired), move.NoMove)
}

func TestParsePlayer(t *testing.T) {
	is := is.New(t)
	base := DefaultSettings()

	p, err := ParsePlayer("minimax:improved", base)
	is.NoErr(err)
	ai, ok := p.(*AIPlayer)
	is.True(ok)
	is.Equal(ai.Settings().Method, search.MethodMinimax)
	is.Equal(ai.Settings().Evaluator, equity.Evaluator(equity.ImprovedEvaluator))

	p, err = ParsePlayer("AI", base)
	is.NoErr(err)
	is.Equal(p.(*AIPlayer).Settings().EvaluatorName, "custom")

	p, err = ParsePlayer("greedy:anti-opponent", base)
	is.NoErr(err)
	is.Equal(p.String(), "greedy (anti-opponent)")

	p, err = ParsePlayer("random", base)
	is.NoErr(err)
	is.Equal(p, Player(RandomPlayer{}))

	_, err = ParsePlayer("human", base)
	is.True(errors.Is(err, ErrUnknownPlayer))
	_, err = ParsePlayer("ai:bogus", base)
	is.True(errors.Is(err, equity.ErrUnknownEvaluator))
}
