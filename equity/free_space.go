package equity

import "github.com/domino14/isolation/game"

// FreeSpaceEvaluator plays for its own mobility while the board is open,
// and switches to blocking the opponent once fewer blank cells remain than
// the two sides have moves between them.
type FreeSpaceEvaluator struct {
	Open    WeightedMobility
	Crowded WeightedMobility
}

// NewFreeSpaceEvaluator returns the evaluator with its usual weightings.
func NewFreeSpaceEvaluator() FreeSpaceEvaluator {
	return FreeSpaceEvaluator{
		Open:    ProSelfEvaluator,
		Crowded: AntiOpponentEvaluator,
	}
}

func (f FreeSpaceEvaluator) Score(st game.State, p game.Player) float64 {
	if s, ok := decided(st, p); ok {
		return s
	}
	own, opp := mobility(st, p)
	if st.NumBlankSpaces() < own+opp {
		return f.Crowded.weigh(own, opp)
	}
	return f.Open.weigh(own, opp)
}
