// Package move contains the Move type for Isolation: a pair of board
// coordinates that a player's piece jumps to.
package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Move is a destination cell on the board. Moves are plain values; copy
// them freely.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when there is no move available. It is never a
// playable move.
var NoMove = Move{Row: -1, Col: -1}

var ErrBadCoords = errors.New("could not parse move coordinates")

var reCoords *regexp.Regexp

func init() {
	reCoords = regexp.MustCompile(`^\(?\s*(?P<row>-?[0-9]+)\s*,\s*(?P<col>-?[0-9]+)\s*\)?$`)
}

// New creates a move to the given cell.
func New(row, col int) Move {
	return Move{Row: row, Col: col}
}

// IsNoMove returns true if m is the "no move" sentinel.
func (m Move) IsNoMove() bool {
	return m == NoMove
}

// String provides a string just for debugging/display purposes.
func (m Move) String() string {
	if m.IsNoMove() {
		return "(none)"
	}
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// ShortDescription is the user-facing form accepted back by Parse.
func (m Move) ShortDescription() string {
	if m.IsNoMove() {
		return "-1,-1"
	}
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// Parse reads coordinates of the form "r,c" or "(r, c)".
func Parse(s string) (Move, error) {
	matches := reCoords.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return NoMove, fmt.Errorf("%w: %q", ErrBadCoords, s)
	}
	row, err := strconv.Atoi(matches[reCoords.SubexpIndex("row")])
	if err != nil {
		return NoMove, err
	}
	col, err := strconv.Atoi(matches[reCoords.SubexpIndex("col")])
	if err != nil {
		return NoMove, err
	}
	return Move{Row: row, Col: col}, nil
}
