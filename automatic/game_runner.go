// Package automatic plays computer-vs-computer Isolation games and logs
// them for later analysis.
package automatic

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/game"
	"github.com/domino14/isolation/move"
	"github.com/domino14/isolation/search"
	"github.com/domino14/isolation/turnplayer"
)

type Reason string

const (
	ReasonNormal      Reason = "normal"
	ReasonTimeout     Reason = "timeout"
	ReasonIllegalMove Reason = "illegal-move"
)

// RandomOpeningPlies is the number of random moves each game starts with.
const RandomOpeningPlies = 2

// GameResult is the outcome of one game. Names are the descriptions the
// players were created from; Names[0] is the first player passed to the
// runner, whichever seat it sat in.
type GameResult struct {
	GameID string
	Names  [2]string
	// First is the index into Names of the player who moved first.
	First int
	// Winner is an index into Names.
	Winner int
	Reason Reason
	Plies  int
}

func (r GameResult) WinnerName() string { return r.Names[r.Winner] }
func (r GameResult) LoserName() string  { return r.Names[1-r.Winner] }

// TurnLog is one move of a game.
type TurnLog struct {
	GameID    string
	Ply       int
	Name      string
	Move      move.Move
	Stats     turnplayer.SearchStats
	Elapsed   time.Duration
	Forfeited Reason
}

// GameRunner plays games between two players. A runner and its players
// belong to a single goroutine.
type GameRunner struct {
	names     [2]string
	players   [2]turnplayer.Player
	width     int
	height    int
	turnLimit time.Duration
	seeds     [][seedSize]byte

	logchan  chan<- TurnLog
	gamechan chan<- GameResult
}

func NewGameRunner(names [2]string, players [2]turnplayer.Player, width, height int,
	turnLimit time.Duration) *GameRunner {
	return &GameRunner{
		names:     names,
		players:   players,
		width:     width,
		height:    height,
		turnLimit: turnLimit,
	}
}

// SetLogChannels makes the runner send every turn and every finished game
// to the given channels. Either may be nil.
func (r *GameRunner) SetLogChannels(logchan chan<- TurnLog, gamechan chan<- GameResult) {
	r.logchan = logchan
	r.gamechan = gamechan
}

func (r *GameRunner) SetSeeds(seeds [][seedSize]byte) {
	r.seeds = seeds
}

// playRandomOpening plays the first moves of the game at random.
func playRandomOpening(g *board.GameBoard, rng *frand.RNG) error {
	for i := 0; i < RandomOpeningPlies && !g.Over(); i++ {
		legal := g.LegalMoves()
		if err := g.ApplyMove(legal[rng.Intn(len(legal))]); err != nil {
			return err
		}
	}
	return nil
}

// PlayGame plays one game to the end. Players swap seats on odd game
// numbers. It returns an error only if ctx was cancelled during the game.
func (r *GameRunner) PlayGame(ctx context.Context, gameNum int) (GameResult, error) {
	res := GameResult{
		GameID: fmt.Sprintf("game-%d", gameNum),
		Names:  r.names,
		First:  gameNum % 2,
	}
	seat := func(p game.Player) int {
		if p == game.PlayerOne {
			return res.First
		}
		return 1 - res.First
	}

	g := board.NewBoard(r.width, r.height)
	if err := playRandomOpening(g, openingRNG(r.seeds, gameNum)); err != nil {
		return res, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		idx := seat(g.ActivePlayer())
		legal := g.LegalMoves()
		if len(legal) == 0 {
			res.Winner, res.Reason = 1-idx, ReasonNormal
			break
		}

		clock := search.NewTurnClock(r.turnLimit)
		m := r.players[idx].GetMove(ctx, g.Copy(), legal, clock)
		elapsed := clock.Elapsed()
		if err := ctx.Err(); err != nil {
			return res, err
		}

		turn := TurnLog{GameID: res.GameID, Ply: g.MoveCount() + 1, Name: r.names[idx],
			Move: m, Elapsed: elapsed}
		if sr, ok := r.players[idx].(turnplayer.StatsReporter); ok {
			turn.Stats = sr.LastStats()
		}

		switch {
		case m.IsNoMove() || clock.Expired():
			turn.Forfeited = ReasonTimeout
		default:
			if err := g.ApplyMove(m); err != nil {
				log.Debug().Err(err).Str("game-id", res.GameID).Msg("illegal-move")
				turn.Forfeited = ReasonIllegalMove
			}
		}
		if r.logchan != nil {
			r.logchan <- turn
		}
		if turn.Forfeited != "" {
			res.Winner, res.Reason = 1-idx, turn.Forfeited
			break
		}
	}

	res.Plies = g.MoveCount()
	log.Debug().Str("game-id", res.GameID).Str("winner", res.WinnerName()).
		Str("reason", string(res.Reason)).Int("plies", res.Plies).Msg("game-over")
	if r.gamechan != nil {
		r.gamechan <- res
	}
	return res, nil
}
