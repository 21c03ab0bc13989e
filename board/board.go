// Package board implements the Isolation game board. Each player owns a
// single piece that moves like a chess knight; every cell a piece has
// visited is blocked for the rest of the game. The player who cannot move
// on their turn loses.
package board

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 7
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrBadPosition = errors.New("bad position")
)

// knight jumps, in the order legal moves are generated.
var directions = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// GameBoard is an Isolation position. The zero value is not usable; create
// boards with NewBoard.
type GameBoard struct {
	width  int
	height int
	// visited[r*width+c] is true once any piece has been on that cell.
	visited   []bool
	blanks    int
	locations [3]move.Move // indexed by game.Player
	active    game.Player
	moveCount int
}

// NewBoard returns an empty board of the given size with player one to
// move.
func NewBoard(width, height int) *GameBoard {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board dimensions must be positive, got %dx%d", width, height))
	}
	return &GameBoard{
		width:     width,
		height:    height,
		visited:   make([]bool, width*height),
		blanks:    width * height,
		locations: [3]move.Move{move.NoMove, move.NoMove, move.NoMove},
		active:    game.PlayerOne,
	}
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	visited := make([]bool, len(g.visited))
	copy(visited, g.visited)
	return &GameBoard{
		width:     g.width,
		height:    g.height,
		visited:   visited,
		blanks:    g.blanks,
		locations: g.locations,
		active:    g.active,
		moveCount: g.moveCount,
	}
}

func (g *GameBoard) Width() int     { return g.width }
func (g *GameBoard) Height() int    { return g.height }
func (g *GameBoard) MoveCount() int { return g.moveCount }

func (g *GameBoard) ActivePlayer() game.Player   { return g.active }
func (g *GameBoard) InactivePlayer() game.Player { return g.active.Other() }

func (g *GameBoard) Opponent(p game.Player) game.Player {
	return p.Other()
}

// PlayerLocation returns where p's piece is, or move.NoMove if p has not
// placed it yet.
func (g *GameBoard) PlayerLocation(p game.Player) move.Move {
	if p != game.PlayerOne && p != game.PlayerTwo {
		return move.NoMove
	}
	return g.locations[p]
}

func (g *GameBoard) inBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// IsBlank returns true if the cell is on the board and no piece has
// visited it.
func (g *GameBoard) IsBlank(m move.Move) bool {
	return g.inBounds(m.Row, m.Col) && !g.visited[m.Row*g.width+m.Col]
}

func (g *GameBoard) NumBlankSpaces() int {
	return g.blanks
}

// BlankSpaces lists the unvisited cells in row-major order.
func (g *GameBoard) BlankSpaces() []move.Move {
	spaces := make([]move.Move, 0, g.blanks)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if !g.visited[r*g.width+c] {
				spaces = append(spaces, move.New(r, c))
			}
		}
	}
	return spaces
}

func (g *GameBoard) LegalMoves() []move.Move {
	return g.LegalMovesFor(g.active)
}

// LegalMovesFor returns p's moves as if it were p's turn. A piece that has
// not been placed yet may go to any blank cell.
func (g *GameBoard) LegalMovesFor(p game.Player) []move.Move {
	loc := g.PlayerLocation(p)
	if loc.IsNoMove() {
		return g.BlankSpaces()
	}
	return lo.FilterMap(directions[:], func(d [2]int, _ int) (move.Move, bool) {
		m := move.New(loc.Row+d[0], loc.Col+d[1])
		return m, g.IsBlank(m)
	})
}

func (g *GameBoard) hasLegalMoves(p game.Player) bool {
	loc := g.PlayerLocation(p)
	if loc.IsNoMove() {
		return g.blanks > 0
	}
	for _, d := range directions {
		if g.IsBlank(move.New(loc.Row+d[0], loc.Col+d[1])) {
			return true
		}
	}
	return false
}

// IsWinner returns true if it is p's opponent's turn and they cannot move.
func (g *GameBoard) IsWinner(p game.Player) bool {
	return p == g.InactivePlayer() && !g.hasLegalMoves(g.active)
}

// IsLoser returns true if it is p's turn and p cannot move.
func (g *GameBoard) IsLoser(p game.Player) bool {
	return p == g.active && !g.hasLegalMoves(g.active)
}

// Over returns true if the side to move has no legal moves.
func (g *GameBoard) Over() bool {
	return !g.hasLegalMoves(g.active)
}

// Winner returns the winning side once the game is over, and
// game.NoPlayer before that.
func (g *GameBoard) Winner() game.Player {
	if !g.Over() {
		return game.NoPlayer
	}
	return g.InactivePlayer()
}

// ApplyMove validates m and plays it for the active player.
func (g *GameBoard) ApplyMove(m move.Move) error {
	if !lo.Contains(g.LegalMoves(), m) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, m, g.active)
	}
	g.playMove(m)
	return nil
}

// playMove plays m without validating it.
func (g *GameBoard) playMove(m move.Move) {
	g.visited[m.Row*g.width+m.Col] = true
	g.blanks--
	g.locations[g.active] = m
	g.active = g.active.Other()
	g.moveCount++
}

// ForecastMove returns a new board with m played. The receiver is not
// modified.
func (g *GameBoard) ForecastMove(m move.Move) game.State {
	n := g.Copy()
	n.playMove(m)
	return n
}

var _ game.State = (*GameBoard)(nil)
