// Package search implements depth-limited minimax and alpha-beta search
// with cooperative cancellation, and an iterative-deepening driver on top
// of them.
//
// Every search call checks the deadline on entry. Once it is breached the
// call returns ErrSearchCancelled, and every frame above it returns the
// same error without a result. Callers keep whatever they had from the last
// search that finished.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/game"
)

var (
	ErrSearchCancelled = errors.New("search cancelled")
	ErrInvalidDepth    = errors.New("search depth must be at least 1")
	ErrUnknownMethod   = errors.New("unknown search method")
)

type Method int

const (
	MethodAlphaBeta Method = iota
	MethodMinimax
)

func (m Method) String() string {
	switch m {
	case MethodMinimax:
		return "minimax"
	case MethodAlphaBeta:
		return "alphabeta"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax":
		return MethodMinimax, nil
	case "alphabeta", "alpha-beta", "":
		return MethodAlphaBeta, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Solver searches on behalf of one player. Leaves are always scored from
// that player's point of view. A Solver is not safe for concurrent use.
type Solver struct {
	player    game.Player
	evaluator equity.Evaluator
	method    Method
	threshold time.Duration

	nodes uint64
}

func NewSolver(player game.Player, evaluator equity.Evaluator, method Method,
	threshold time.Duration) *Solver {
	return &Solver{
		player:    player,
		evaluator: evaluator,
		method:    method,
		threshold: threshold,
	}
}

func (s *Solver) Player() game.Player { return s.player }
func (s *Solver) Method() Method      { return s.method }

// Nodes is the number of search calls entered since the last ResetStats.
func (s *Solver) Nodes() uint64 { return s.nodes }

func (s *Solver) ResetStats() { s.nodes = 0 }

// checkTime is run on entry to every search call.
func (s *Solver) checkTime(ctx context.Context, dl Deadline) error {
	s.nodes++
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrSearchCancelled, ctx.Err())
	default:
	}
	if dl.TimeLeft() < s.threshold {
		return ErrSearchCancelled
	}
	return nil
}

// Search runs the configured method to the given depth with a full window,
// with the solver's player to move.
func (s *Solver) Search(ctx context.Context, dl Deadline, st game.State, depth int) (Result, error) {
	if s.method == MethodMinimax {
		return s.Minimax(ctx, dl, st, depth, true)
	}
	return s.AlphaBeta(ctx, dl, st, depth, equity.Loss, equity.Win, true)
}
