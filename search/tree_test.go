package search

import (
	"github.com/domino14/isolation/equity"
	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
)

// node is a hand-built game tree. score is what the leaf evaluator reports
// for the node.
type node struct {
	score    float64
	children []*node
}

func leaves(scores ...float64) *node {
	n := &node{}
	for _, s := range scores {
		n.children = append(n.children, &node{score: s})
	}
	return n
}

func inner(children ...*node) *node {
	return &node{children: children}
}

func uniform(branch, depth int) *node {
	n := &node{}
	if depth == 0 {
		return n
	}
	for i := 0; i < branch; i++ {
		n.children = append(n.children, uniform(branch, depth-1))
	}
	return n
}

// treeState walks a node tree. Moves are (ply, child index). applied counts
// every ForecastMove made from this state or its descendants.
type treeState struct {
	n       *node
	ply     int
	blanks  int
	applied *int
}

func newTreeState(n *node) *treeState {
	return &treeState{n: n, blanks: 100, applied: new(int)}
}

func (t *treeState) ActivePlayer() game.Player {
	if t.ply%2 == 0 {
		return game.PlayerOne
	}
	return game.PlayerTwo
}

func (t *treeState) Opponent(p game.Player) game.Player { return p.Other() }

func (t *treeState) LegalMoves() []move.Move {
	ms := make([]move.Move, len(t.n.children))
	for i := range t.n.children {
		ms[i] = move.New(t.ply, i)
	}
	return ms
}

func (t *treeState) LegalMovesFor(p game.Player) []move.Move {
	if p == t.ActivePlayer() {
		return t.LegalMoves()
	}
	return nil
}

func (t *treeState) ForecastMove(m move.Move) game.State {
	*t.applied++
	return &treeState{n: t.n.children[m.Col], ply: t.ply + 1, blanks: t.blanks - 1,
		applied: t.applied}
}

func (t *treeState) IsWinner(p game.Player) bool { return false }
func (t *treeState) IsLoser(p game.Player) bool  { return false }
func (t *treeState) Width() int                  { return 0 }
func (t *treeState) Height() int                 { return 0 }
func (t *treeState) MoveCount() int              { return t.ply }
func (t *treeState) NumBlankSpaces() int         { return t.blanks }

var nodeScore = equity.EvaluatorFunc(func(st game.State, p game.Player) float64 {
	return st.(*treeState).n.score
})

func treeSolver(method Method) *Solver {
	return NewSolver(game.PlayerOne, nodeScore, method, 0)
}
