package turnplayer

import (
	"errors"
	"fmt"
	"time"

	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/search"
)

var ErrInvalidSettings = errors.New("invalid player settings")

// Settings configures an AIPlayer.
type Settings struct {
	// SearchDepth is only used when Iterative is false.
	SearchDepth int
	Evaluator   equity.Evaluator
	// EvaluatorName is for display only.
	EvaluatorName string
	Iterative     bool
	Method        search.Method
	// TimerThreshold is how much time must be left on the clock for the
	// search to keep going.
	TimerThreshold time.Duration
	// MaxDepth caps iterative deepening; 0 means no cap.
	MaxDepth int
}

func DefaultSettings() Settings {
	return Settings{
		SearchDepth:    3,
		Evaluator:      equity.NewFreeSpaceEvaluator(),
		EvaluatorName:  equity.CustomName,
		Iterative:      true,
		Method:         search.MethodAlphaBeta,
		TimerThreshold: 10 * time.Millisecond,
	}
}

func (s Settings) Validate() error {
	switch {
	case s.Evaluator == nil:
		return fmt.Errorf("%w: no evaluator", ErrInvalidSettings)
	case !s.Iterative && s.SearchDepth < 1:
		return fmt.Errorf("%w: search depth must be positive, got %d", ErrInvalidSettings, s.SearchDepth)
	case s.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidSettings, s.MaxDepth)
	case s.TimerThreshold < 0:
		return fmt.Errorf("%w: negative timer threshold %v", ErrInvalidSettings, s.TimerThreshold)
	case s.Method != search.MethodAlphaBeta && s.Method != search.MethodMinimax:
		return fmt.Errorf("%w: %v", ErrInvalidSettings, s.Method)
	}
	return nil
}

// WithEvaluator returns a copy of s that uses the named evaluator.
func (s Settings) WithEvaluator(name string) (Settings, error) {
	e, err := equity.FromName(name)
	if err != nil {
		return s, err
	}
	s.Evaluator = e
	s.EvaluatorName = name
	if name == "" {
		s.EvaluatorName = equity.CustomName
	}
	return s, nil
}

func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	method, err := search.ParseMethod(cfg.GetString(config.ConfigSearchMethod))
	if err != nil {
		return Settings{}, err
	}
	s := Settings{
		SearchDepth:    cfg.GetInt(config.ConfigSearchDepth),
		Iterative:      cfg.GetBool(config.ConfigIterative),
		Method:         method,
		TimerThreshold: time.Duration(cfg.GetInt(config.ConfigTimerThresholdMS)) * time.Millisecond,
		MaxDepth:       cfg.GetInt(config.ConfigMaxDepth),
	}
	s, err = s.WithEvaluator(cfg.GetString(config.ConfigEvaluator))
	if err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}

func (s Settings) String() string {
	if s.Iterative {
		return fmt.Sprintf("%v/%s/iterative", s.Method, s.EvaluatorName)
	}
	return fmt.Sprintf("%v/%s/depth-%d", s.Method, s.EvaluatorName, s.SearchDepth)
}
