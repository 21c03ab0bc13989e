package board

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
)

// Position is the on-disk form of a board.
type Position struct {
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	MoveCount int      `yaml:"move_count"`
	Active    int      `yaml:"active"`
	Player1   string   `yaml:"player1,omitempty"`
	Player2   string   `yaml:"player2,omitempty"`
	Blocked   []string `yaml:"blocked,omitempty"`
}

// Position returns the serializable form of g. Blocked cells exclude the
// cells the pieces stand on.
func (g *GameBoard) Position() Position {
	pos := Position{
		Width:     g.width,
		Height:    g.height,
		MoveCount: g.moveCount,
		Active:    int(g.active),
	}
	p1, p2 := g.locations[game.PlayerOne], g.locations[game.PlayerTwo]
	if !p1.IsNoMove() {
		pos.Player1 = p1.ShortDescription()
	}
	if !p2.IsNoMove() {
		pos.Player2 = p2.ShortDescription()
	}
	visited := lo.Reject(allCells(g.width, g.height), func(m move.Move, _ int) bool {
		return g.IsBlank(m) || m == p1 || m == p2
	})
	pos.Blocked = lo.Map(visited, func(m move.Move, _ int) string {
		return m.ShortDescription()
	})
	return pos
}

func allCells(width, height int) []move.Move {
	cells := make([]move.Move, 0, width*height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			cells = append(cells, move.New(r, c))
		}
	}
	return cells
}

// FromPosition validates pos and builds the board it describes.
func FromPosition(pos Position) (*GameBoard, error) {
	if pos.Width <= 0 || pos.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadPosition, pos.Width, pos.Height)
	}
	g := NewBoard(pos.Width, pos.Height)

	visit := func(s string) (move.Move, error) {
		m, err := move.Parse(s)
		if err != nil {
			return move.NoMove, fmt.Errorf("%w: %w", ErrBadPosition, err)
		}
		if !g.IsBlank(m) {
			return move.NoMove, fmt.Errorf("%w: cell %v is off the board or listed twice",
				ErrBadPosition, m)
		}
		g.visited[m.Row*g.width+m.Col] = true
		g.blanks--
		return m, nil
	}
	for _, s := range pos.Blocked {
		if _, err := visit(s); err != nil {
			return nil, err
		}
	}
	for p, s := range map[game.Player]string{game.PlayerOne: pos.Player1, game.PlayerTwo: pos.Player2} {
		if s == "" {
			continue
		}
		m, err := visit(s)
		if err != nil {
			return nil, err
		}
		g.locations[p] = m
	}
	if err := g.settle(); err != nil {
		return nil, err
	}
	if pos.MoveCount != g.moveCount || pos.Active != int(g.active) {
		return nil, fmt.Errorf("%w: move count %d and active player %d do not match the %d visited cells",
			ErrBadPosition, pos.MoveCount, pos.Active, g.moveCount)
	}
	return g, nil
}

// Load reads a YAML position file.
func Load(path string) (*GameBoard, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pos Position
	if err := yaml.Unmarshal(bts, &pos); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPosition, err)
	}
	return FromPosition(pos)
}

// Save writes g to path as YAML.
func Save(g *GameBoard, path string) error {
	bts, err := yaml.Marshal(g.Position())
	if err != nil {
		return err
	}
	return os.WriteFile(path, bts, 0o644)
}
