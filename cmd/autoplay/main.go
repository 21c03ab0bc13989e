// Command autoplay runs a computer vs computer match and prints an
// analysis of its log.
//
//	autoplay [settings] -- [p1 p2]
//	autoplay -- seeds <n> <file>
//
// The second form writes n random opening seeds to file, for use with
// --autoplay-seed-file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/isolation/automatic"
	"github.com/domino14/isolation/config"
)

func main() {
	args := os.Args[1:]
	var positional []string
	if i := slices.Index(args, "--"); i >= 0 {
		positional = args[i+1:]
	}
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		fmt.Fprintln(os.Stderr, "bad settings:", err)
		os.Exit(1)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if len(positional) > 0 && positional[0] == "seeds" {
		if len(positional) != 3 {
			log.Fatal().Msg("usage: autoplay -- seeds <n> <file>")
		}
		n, err := strconv.Atoi(positional[1])
		if err != nil || n < 1 {
			log.Fatal().Str("n", positional[1]).Msg("bad-seed-count")
		}
		if err := automatic.SaveSeeds(automatic.GenerateSeeds(n), positional[2]); err != nil {
			log.Fatal().Err(err).Msg("save-seeds-failed")
		}
		log.Info().Int("seeds", n).Str("file", positional[2]).Msg("wrote-seeds")
		return
	}

	p1, p2 := "ai", "ai:improved"
	switch len(positional) {
	case 0:
	case 2:
		p1, p2 = positional[0], positional[1]
	default:
		log.Fatal().Msg("usage: autoplay [settings] -- [p1 p2]")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logfile := cfg.GetString(config.ConfigAutoplayLogfile)
	err := automatic.StartCompVComp(ctx, cfg, p1, p2,
		cfg.GetInt(config.ConfigAutoplayGames), cfg.GetInt(config.ConfigAutoplayThreads), logfile)
	if err != nil {
		log.Fatal().Err(err).Msg("autoplay-failed")
	}
	stats, err := automatic.AnalyzeLogFile(logfile)
	if err != nil {
		log.Fatal().Err(err).Msg("analyze-failed")
	}
	fmt.Println(stats)
}
