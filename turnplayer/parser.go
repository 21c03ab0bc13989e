package turnplayer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/isolation/search"
)

var ErrUnknownPlayer = errors.New("unknown player")

// ParsePlayer builds a player from a short description:
//
//	ai[:evaluator]         search with the method in base
//	alphabeta[:evaluator]  search with alpha-beta
//	minimax[:evaluator]    search with plain minimax
//	greedy[:evaluator]     one-ply lookahead
//	random
//
// An empty evaluator keeps the one in base.
func ParsePlayer(desc string, base Settings) (Player, error) {
	kind, evalName, hasEval := strings.Cut(strings.ToLower(strings.TrimSpace(desc)), ":")
	settings := base
	if hasEval {
		var err error
		settings, err = base.WithEvaluator(evalName)
		if err != nil {
			return nil, err
		}
	}
	switch kind {
	case "ai":
	case "alphabeta":
		settings.Method = search.MethodAlphaBeta
	case "minimax":
		settings.Method = search.MethodMinimax
	case "greedy":
		return GreedyPlayer{Evaluator: settings.Evaluator, EvaluatorName: settings.EvaluatorName}, nil
	case "random":
		if hasEval {
			return nil, fmt.Errorf("%w: random takes no evaluator", ErrUnknownPlayer)
		}
		return RandomPlayer{}, nil
	default:
		msg := "valid players: ai, alphabeta, minimax, greedy, random"
		return nil, fmt.Errorf("%w: %q; %s", ErrUnknownPlayer, desc, msg)
	}
	p, err := NewAIPlayer(desc, settings)
	if err != nil {
		return nil, err
	}
	return p, nil
}
