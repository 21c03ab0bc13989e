package equity

import "github.com/domino14/isolation/game"

// mobility returns the number of legal moves for p and for its opponent.
func mobility(st game.State, p game.Player) (own, opp int) {
	return len(st.LegalMovesFor(p)), len(st.LegalMovesFor(st.Opponent(p)))
}

// decided returns the sentinel for a finished game, and false if the game
// is still going.
func decided(st game.State, p game.Player) (float64, bool) {
	if st.IsLoser(p) {
		return Loss, true
	}
	if st.IsWinner(p) {
		return Win, true
	}
	return 0, false
}

// WeightedMobility scores a position as ownWeight*own - oppWeight*opp,
// where own and opp are the legal-move counts of each side.
type WeightedMobility struct {
	OwnWeight float64
	OppWeight float64
}

func (w WeightedMobility) Score(st game.State, p game.Player) float64 {
	if s, ok := decided(st, p); ok {
		return s
	}
	own, opp := mobility(st, p)
	return w.weigh(own, opp)
}

func (w WeightedMobility) weigh(own, opp int) float64 {
	return w.OwnWeight*float64(own) - w.OppWeight*float64(opp)
}

var (
	// ImprovedEvaluator is the plain difference in mobility.
	ImprovedEvaluator = WeightedMobility{OwnWeight: 1, OppWeight: 1}
	// ProSelfEvaluator discounts the opponent's moves, so keeping our own
	// options open counts for more.
	ProSelfEvaluator = WeightedMobility{OwnWeight: 1, OppWeight: 0.9}
	// AntiOpponentEvaluator discounts our own moves, so taking away the
	// opponent's options counts for more.
	AntiOpponentEvaluator = WeightedMobility{OwnWeight: 0.9, OppWeight: 1}
)
