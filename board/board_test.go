package board

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
)

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	g := NewBoard(DefaultWidth, DefaultHeight)
	is.Equal(g.NumBlankSpaces(), 49)
	is.Equal(g.MoveCount(), 0)
	is.Equal(g.ActivePlayer(), game.PlayerOne)
	is.Equal(g.InactivePlayer(), game.PlayerTwo)
	is.Equal(g.PlayerLocation(game.PlayerOne), move.NoMove)
	// A piece that has not been placed may go anywhere.
	is.Equal(len(g.LegalMoves()), 49)
	is.Equal(g.LegalMoves()[0], move.New(0, 0))
	is.Equal(g.LegalMoves()[1], move.New(0, 1))
}

func TestKnightMoves(t *testing.T) {
	is := is.New(t)
	g := NewBoard(7, 7)
	is.NoErr(g.ApplyMove(move.New(3, 3)))
	is.NoErr(g.ApplyMove(move.New(0, 0)))
	is.Equal(g.LegalMoves(), []move.Move{
		{Row: 1, Col: 2}, {Row: 1, Col: 4}, {Row: 2, Col: 1}, {Row: 2, Col: 5},
		{Row: 4, Col: 1}, {Row: 4, Col: 5}, {Row: 5, Col: 2}, {Row: 5, Col: 4},
	})
	// From the corner only two jumps stay on the board.
	is.Equal(g.LegalMovesFor(game.PlayerTwo), []move.Move{{Row: 1, Col: 2}, {Row: 2, Col: 1}})
}

func TestApplyMove(t *testing.T) {
	is := is.New(t)
	g := NewBoard(5, 5)
	is.NoErr(g.ApplyMove(move.New(2, 2)))
	is.Equal(g.MoveCount(), 1)
	is.Equal(g.ActivePlayer(), game.PlayerTwo)
	is.Equal(g.NumBlankSpaces(), 24)

	err := g.ApplyMove(move.New(2, 2))
	is.True(errors.Is(err, ErrIllegalMove))
	is.NoErr(g.ApplyMove(move.New(0, 0)))

	// Not a knight jump.
	err = g.ApplyMove(move.New(2, 3))
	is.True(errors.Is(err, ErrIllegalMove))
	err = g.ApplyMove(move.NoMove)
	is.True(errors.Is(err, ErrIllegalMove))
	is.NoErr(g.ApplyMove(move.New(0, 1)))
	is.Equal(g.PlayerLocation(game.PlayerOne), move.New(0, 1))
}

func TestForecastDoesNotMutate(t *testing.T) {
	is := is.New(t)
	g := MustFromPlaintext(MidgameFive)
	before := g.ToPlaintext()
	next := g.ForecastMove(move.New(0, 3))
	is.Equal(g.ToPlaintext(), before)
	is.Equal(next.MoveCount(), g.MoveCount()+1)
	is.Equal(next.ActivePlayer(), game.PlayerTwo)
	is.Equal(next.NumBlankSpaces(), g.NumBlankSpaces()-1)
	is.Equal(next.(*GameBoard).PlayerLocation(game.PlayerOne), move.New(0, 3))
}

func TestWinnerLoser(t *testing.T) {
	is := is.New(t)
	g := MustFromPlaintext(StuckCenter)
	is.Equal(g.ActivePlayer(), game.PlayerOne)
	is.Equal(len(g.LegalMoves()), 0)
	is.True(g.IsLoser(game.PlayerOne))
	is.True(!g.IsWinner(game.PlayerOne))
	is.True(g.IsWinner(game.PlayerTwo))
	is.True(!g.IsLoser(game.PlayerTwo))
	is.True(g.Over())
	is.Equal(g.Winner(), game.PlayerTwo)

	g = MustFromPlaintext(MidgameFive)
	is.True(!g.Over())
	is.True(!g.IsWinner(game.PlayerOne))
	is.True(!g.IsLoser(game.PlayerOne))
	is.Equal(g.Winner(), game.NoPlayer)
}

func TestFromPlaintext(t *testing.T) {
	is := is.New(t)
	g := MustFromPlaintext(OneWayOut)
	is.Equal(g.Width(), 3)
	is.Equal(g.Height(), 3)
	is.Equal(g.MoveCount(), 4)
	is.Equal(g.ActivePlayer(), game.PlayerOne)
	is.Equal(g.NumBlankSpaces(), 5)
	is.Equal(g.LegalMoves(), []move.Move{{Row: 2, Col: 1}})
	is.Equal(g.PlayerLocation(game.PlayerTwo), move.New(2, 2))
	is.Equal(strings.TrimSpace(g.ToPlaintext()), strings.TrimSpace(string(OneWayOut)))

	g = MustFromPlaintext(MidgameFive)
	is.Equal(g.MoveCount(), 6)
	is.Equal(g.LegalMoves(), []move.Move{{Row: 0, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 0}})
}

func TestFromPlaintextErrors(t *testing.T) {
	is := is.New(t)
	for _, text := range []string{
		"",
		". .\n. . .",
		". q\n. .",
		"1 1\n. .",
		"2 .\n. .",
		"X X\n. .",
	} {
		_, err := FromPlaintext(text)
		is.True(errors.Is(err, ErrBadPosition))
	}
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	g := MustFromPlaintext(OneWayOut)
	txt := g.ToDisplayText()
	is.True(strings.Contains(txt, " 0| 1 X . |"))
	is.True(strings.Contains(txt, " 2| . . 2 |"))
	is.True(strings.Contains(txt, "move 4, player-1 to move"))
}

func TestPositionRoundTrip(t *testing.T) {
	is := is.New(t)
	g := MustFromPlaintext(MidgameFive)
	pos := g.Position()
	is.Equal(pos.Player1, "1,1")
	is.Equal(pos.Player2, "3,2")
	is.Equal(pos.Blocked, []string{"0,2", "1,4", "2,0", "4,1"})

	path := filepath.Join(t.TempDir(), "midgame.yaml")
	is.NoErr(Save(g, path))
	loaded, err := Load(path)
	is.NoErr(err)
	is.Equal(loaded.ToPlaintext(), g.ToPlaintext())
	is.Equal(loaded.MoveCount(), g.MoveCount())
	is.Equal(loaded.ActivePlayer(), g.ActivePlayer())
}

func TestLoadErrors(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	for name, contents := range map[string]string{
		"garbage.yaml":  "width: [",
		"size.yaml":     "width: 0\nheight: 3\n",
		"offboard.yaml": "width: 3\nheight: 3\nmove_count: 1\nactive: 2\nplayer1: \"5,5\"\n",
		"count.yaml":    "width: 3\nheight: 3\nmove_count: 3\nactive: 2\nplayer1: \"1,1\"\n",
		"dupe.yaml":     "width: 3\nheight: 3\nmove_count: 2\nactive: 1\nplayer1: \"1,1\"\nplayer2: \"1,1\"\n",
	} {
		path := filepath.Join(dir, name)
		is.NoErr(os.WriteFile(path, []byte(contents), 0o644))
		_, err := Load(path)
		is.True(errors.Is(err, ErrBadPosition)) // each file is rejected
	}
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	is.True(errors.Is(err, os.ErrNotExist))
}
