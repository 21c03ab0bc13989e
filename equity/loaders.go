package equity

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

const (
	ImprovedName     = "improved"
	ProSelfName      = "pro-self"
	AntiOpponentName = "anti-opponent"
	FreeSpaceName    = "free-space"
	// CustomName is the default evaluator.
	CustomName = "custom"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

var evaluators = map[string]Evaluator{
	ImprovedName:     ImprovedEvaluator,
	ProSelfName:      ProSelfEvaluator,
	AntiOpponentName: AntiOpponentEvaluator,
	FreeSpaceName:    NewFreeSpaceEvaluator(),
	CustomName:       NewFreeSpaceEvaluator(),
}

// FromName looks up an evaluator by name. The empty name is the default.
func FromName(name string) (Evaluator, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = CustomName
	}
	e, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownEvaluator, name,
			strings.Join(Names(), ", "))
	}
	return e, nil
}

// Names lists the known evaluator names, sorted.
func Names() []string {
	names := lo.Keys(evaluators)
	sort.Strings(names)
	return names
}
