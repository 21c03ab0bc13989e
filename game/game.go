// Package game defines the contract between the search engine and a
// two-player game state.
package game

import (
	"fmt"

	"github.com/domino14/isolation/move"
)

// Player identifies one of the two sides of a game.
type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player-1"
	case PlayerTwo:
		return "player-2"
	}
	return fmt.Sprintf("player(%d)", int(p))
}

// Other returns the opposing side.
func (p Player) Other() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

// State is a game position as seen by the search. Implementations must be
// safe to share between search frames: ForecastMove never mutates the
// receiver.
type State interface {
	// ActivePlayer is the side to move.
	ActivePlayer() Player
	Opponent(p Player) Player

	// LegalMoves returns the moves for the side to move, in a deterministic
	// order. The search keeps the first of several equally good moves, so
	// the order is observable.
	LegalMoves() []move.Move
	LegalMovesFor(p Player) []move.Move

	// ForecastMove returns the state that results from the active player
	// making move m.
	ForecastMove(m move.Move) State

	IsWinner(p Player) bool
	IsLoser(p Player) bool

	Width() int
	Height() int
	// MoveCount is the number of plies played so far.
	MoveCount() int
	NumBlankSpaces() int
}
