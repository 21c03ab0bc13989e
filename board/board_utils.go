package board

import (
	"fmt"
	"strings"

	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
)

const (
	blankMarker   = "."
	blockedMarker = "X"
	p1Marker      = "1"
	p2Marker      = "2"
)

// ToDisplayText renders the board with row and column indices.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("    ")
	for c := 0; c < g.width; c++ {
		fmt.Fprintf(&sb, "%-2d", c)
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", g.width*2+1) + "\n")
	for r := 0; r < g.height; r++ {
		fmt.Fprintf(&sb, "%2d| ", r)
		for c := 0; c < g.width; c++ {
			sb.WriteString(g.marker(move.New(r, c)) + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", g.width*2+1) + "\n")
	fmt.Fprintf(&sb, "move %d, %v to move\n", g.moveCount, g.active)
	return sb.String()
}

// ToPlaintext is the inverse of FromPlaintext.
func (g *GameBoard) ToPlaintext() string {
	rows := make([]string, g.height)
	for r := 0; r < g.height; r++ {
		cells := make([]string, g.width)
		for c := 0; c < g.width; c++ {
			cells[c] = g.marker(move.New(r, c))
		}
		rows[r] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "\n") + "\n"
}

func (g *GameBoard) marker(m move.Move) string {
	switch {
	case g.locations[game.PlayerOne] == m:
		return p1Marker
	case g.locations[game.PlayerTwo] == m:
		return p2Marker
	case !g.IsBlank(m):
		return blockedMarker
	}
	return blankMarker
}

// FromPlaintext builds a board out of rows of whitespace-separated cells:
// "." for blank, "X" for a visited cell, "1" and "2" for the pieces. Every
// ply visits exactly one new cell, so the move count is the number of
// visited cells and its parity decides who is to move.
func FromPlaintext(text string) (*GameBoard, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrBadPosition)
	}
	width := len(rows[0])
	g := NewBoard(width, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrBadPosition, r, len(row), width)
		}
		for c, cell := range row {
			m := move.New(r, c)
			switch cell {
			case blankMarker:
				continue
			case blockedMarker:
			case p1Marker, p2Marker:
				p := game.PlayerOne
				if cell == p2Marker {
					p = game.PlayerTwo
				}
				if !g.locations[p].IsNoMove() {
					return nil, fmt.Errorf("%w: %v appears twice", ErrBadPosition, p)
				}
				g.locations[p] = m
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrBadPosition, cell, m)
			}
			g.visited[r*width+c] = true
			g.blanks--
		}
	}
	return g, g.settle()
}

// settle derives the move count and the side to move from the visited
// cells, then checks that the piece locations agree with them.
func (g *GameBoard) settle() error {
	g.moveCount = len(g.visited) - g.blanks
	g.active = game.PlayerOne
	if g.moveCount%2 == 1 {
		g.active = game.PlayerTwo
	}
	p1, p2 := g.locations[game.PlayerOne], g.locations[game.PlayerTwo]
	switch {
	case g.moveCount >= 1 && p1.IsNoMove():
		return fmt.Errorf("%w: player one has moved but has no piece", ErrBadPosition)
	case g.moveCount >= 2 && p2.IsNoMove():
		return fmt.Errorf("%w: player two has moved but has no piece", ErrBadPosition)
	case g.moveCount < 2 && !p2.IsNoMove():
		return fmt.Errorf("%w: player two placed before player one moved", ErrBadPosition)
	}
	return nil
}
