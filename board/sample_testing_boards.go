package board

// This file contains some sample boards, used solely for testing.

// VsWho is a plaintext representation of a board. See FromPlaintext.
type VsWho string

const (
	// EmptyThree is a fresh 3x3 board.
	EmptyThree VsWho = `
. . .
. . .
. . .
`
	// StuckCenter has player one on the center of a 3x3 board, where a
	// knight has no moves at all. Player one is to move and has lost.
	StuckCenter VsWho = `
2 . .
. 1 .
. . .
`
	// OneWayOut leaves player one a single jump, to (2, 1).
	OneWayOut VsWho = `
1 X .
. . X
. . 2
`
	// DoomedOnlyMove leaves player one a single jump, to (2, 0). Player
	// two's only reply, (1, 0), then strands player one.
	DoomedOnlyMove VsWho = `
X X . X
. . 1 X
. . 2 .
`
	// MidgameFive is a 5x5 position with player one to move and three
	// replies available.
	MidgameFive VsWho = `
. . X . .
. 1 . . X
X . . . .
. . 2 . .
. X . . .
`
)

// MustFromPlaintext is FromPlaintext for known-good boards; it panics on
// error.
func MustFromPlaintext(b VsWho) *GameBoard {
	g, err := FromPlaintext(string(b))
	if err != nil {
		panic(err)
	}
	return g
}
