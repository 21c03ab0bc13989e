package automatic

// Computer vs computer matches, played in parallel and logged as CSV.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/turnplayer"
)

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

var (
	CVCCounter *expvar.Int
	playing    atomic.Bool
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	expvar.Publish("isPlaying", expvar.Func(func() any { return playing.Load() }))
}

// IsPlaying returns true while a match is running.
func IsPlaying() bool {
	return playing.Load()
}

var (
	turnLogHeader = []string{"gameID", "ply", "player", "move", "depth", "nodes",
		"elapsedMS", "cancelled", "score", "book", "forfeit"}
	gameLogHeader = []string{"gameID", "p1", "p2", "first", "winner", "reason", "plies"}
)

// GamesLogPath is where the per-game log goes for a given turn log.
func GamesLogPath(turnLogPath string) string {
	ext := filepath.Ext(turnLogPath)
	return strings.TrimSuffix(turnLogPath, ext) + "_games" + ext
}

func (t TurnLog) record() []string {
	return []string{
		t.GameID,
		strconv.Itoa(t.Ply),
		t.Name,
		t.Move.ShortDescription(),
		strconv.Itoa(t.Stats.Depth),
		strconv.FormatUint(t.Stats.Nodes, 10),
		strconv.FormatInt(t.Elapsed.Milliseconds(), 10),
		strconv.FormatBool(t.Stats.Cancelled),
		strconv.FormatFloat(t.Stats.Score, 'g', -1, 64),
		strconv.FormatBool(t.Stats.Book),
		string(t.Forfeited),
	}
}

func (r GameResult) record() []string {
	return []string{
		r.GameID,
		r.Names[0],
		r.Names[1],
		r.Names[r.First],
		r.WinnerName(),
		string(r.Reason),
		strconv.Itoa(r.Plies),
	}
}

// writeCSV writes header and then every record received on ch to path.
// It drains ch even after a write error.
func writeCSV[T interface{ record() []string }](path string, header []string, ch <-chan T) error {
	f, err := os.Create(path)
	if err != nil {
		for range ch {
		}
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write(header)
	for rec := range ch {
		w.Write(rec.record())
	}
	w.Flush()
	return w.Error()
}

// StartCompVComp plays numGames games between the players described by p1
// and p2 (see turnplayer.ParsePlayer), threads at a time. Both players use
// the search settings in cfg. Every turn is logged to outputFilename and
// every game to GamesLogPath(outputFilename). It blocks until all games
// are done or ctx is cancelled. A game cut short by cancellation has no
// entry in the games log.
func StartCompVComp(ctx context.Context, cfg *config.Config, p1, p2 string,
	numGames, threads int, outputFilename string) error {

	if !playing.CompareAndSwap(false, true) {
		return ErrAlreadyPlaying
	}
	defer playing.Store(false)

	settings, err := turnplayer.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	descs := [2]string{p1, p2}
	names := descs
	if p1 == p2 {
		names = [2]string{p1 + "-1", p2 + "-2"}
	}
	// Check both descriptions before starting any game.
	for _, n := range descs {
		if _, err := turnplayer.ParsePlayer(n, settings); err != nil {
			return err
		}
	}
	var seeds [][seedSize]byte
	if seedFile := cfg.GetString(config.ConfigAutoplaySeedFile); seedFile != "" {
		if seeds, err = LoadSeeds(seedFile); err != nil {
			return err
		}
	}
	if threads < 1 {
		threads = 1
	}
	width, height := cfg.GetInt(config.ConfigBoardWidth), cfg.GetInt(config.ConfigBoardHeight)
	turnLimit := time.Duration(cfg.GetInt(config.ConfigTurnTimeLimitMS)) * time.Millisecond

	log.Info().Int("games", numGames).Int("threads", threads).Str("p1", p1).Str("p2", p2).
		Str("logfile", outputFilename).Msg("starting-autoplay")
	CVCCounter.Set(0)

	logChan := make(chan TurnLog, 100)
	gameChan := make(chan GameResult, 100)
	var wg sync.WaitGroup
	var turnErr, gameErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		turnErr = writeCSV[TurnLog](outputFilename, turnLogHeader, logChan)
	}()
	go func() {
		defer wg.Done()
		gameErr = writeCSV[GameResult](GamesLogPath(outputFilename), gameLogHeader, gameChan)
	}()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(threads)
	for i := 0; i < numGames && ctx.Err() == nil; i++ {
		i := i
		eg.Go(func() error {
			var players [2]turnplayer.Player
			for j, n := range descs {
				p, err := turnplayer.ParsePlayer(n, settings)
				if err != nil {
					return err
				}
				players[j] = p
			}
			r := NewGameRunner(names, players, width, height, turnLimit)
			r.SetLogChannels(logChan, gameChan)
			r.SetSeeds(seeds)
			if _, err := r.PlayGame(ctx, i); err != nil {
				return err
			}
			if n := CVCCounter.Value() + 1; n%100 == 0 {
				log.Info().Int64("games", n).Msg("autoplay-progress")
			}
			CVCCounter.Add(1)
			return nil
		})
	}
	err = eg.Wait()
	close(logChan)
	close(gameChan)
	wg.Wait()

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Info().Int64("games", CVCCounter.Value()).Msg("autoplay-stopped")
		err = nil
	}
	if err == nil {
		err = errors.Join(turnErr, gameErr)
	}
	if err == nil {
		log.Info().Int64("games", CVCCounter.Value()).Msg("autoplay-finished")
	}
	return err
}
