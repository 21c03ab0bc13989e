package shell

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/isolation/automatic"
	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/move"
	"github.com/domino14/isolation/search"
	"github.com/domino14/isolation/turnplayer"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func (c CmdOptions) Has(key string) bool {
	return len(c[key]) > 0
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) gameOverText() string {
	if !sc.board.Over() {
		return ""
	}
	return fmt.Sprintf("\nGame over: %v cannot move, %v wins.",
		sc.board.ActivePlayer(), sc.board.Winner())
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	width := sc.config.GetInt(config.ConfigBoardWidth)
	height := sc.config.GetInt(config.ConfigBoardHeight)
	switch len(cmd.args) {
	case 0:
	case 2:
		var err error
		if width, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
		if height, err = strconv.Atoi(cmd.args[1]); err != nil {
			return nil, err
		}
		if width < 1 || height < 1 {
			return nil, errors.New("board dimensions must be positive")
		}
	default:
		return nil, errors.New("usage: new [width height]")
	}
	sc.board = board.NewBoard(width, height)
	return sc.show(cmd)
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <file>")
	}
	g, err := board.Load(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.board = g
	return sc.show(cmd)
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if sc.board == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: save <file>")
	}
	if err := board.Save(sc.board, cmd.args[0]); err != nil {
		return nil, err
	}
	return msg("saved position to " + cmd.args[0]), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.board == nil {
		return nil, errNoGame
	}
	return msg(sc.board.ToDisplayText() + sc.gameOverText()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	if sc.board == nil {
		return nil, errNoGame
	}
	legal := sc.board.LegalMoves()
	if len(legal) == 0 {
		return msg("no legal moves"), nil
	}
	return msg(strings.Join(lo.Map(legal, func(m move.Move, _ int) string {
		return m.ShortDescription()
	}), "  ")), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.board == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <row,col>")
	}
	m, err := move.Parse(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := sc.board.ApplyMove(m); err != nil {
		return nil, err
	}
	return sc.show(cmd)
}

// searchSettings applies the search command's options on top of the
// configured settings.
func (sc *ShellController) searchSettings(options CmdOptions) (turnplayer.Settings, time.Duration, error) {
	settings, err := turnplayer.SettingsFromConfig(sc.config)
	if err != nil {
		return settings, 0, err
	}
	if options.Has("depth") {
		if settings.SearchDepth, err = options.Int("depth"); err != nil {
			return settings, 0, err
		}
		settings.Iterative = false
	}
	if options.Has("iterative") {
		settings.Iterative = options.Bool("iterative")
	}
	if options.Has("method") {
		if settings.Method, err = search.ParseMethod(options.String("method")); err != nil {
			return settings, 0, err
		}
	}
	if options.Has("eval") {
		if settings, err = settings.WithEvaluator(options.String("eval")); err != nil {
			return settings, 0, err
		}
	}
	ms, err := options.IntDefault("time", sc.config.GetInt(config.ConfigTurnTimeLimitMS))
	if err != nil {
		return settings, 0, err
	}
	return settings, time.Duration(ms) * time.Millisecond, settings.Validate()
}

func (sc *ShellController) searchPosition(cmd *shellcmd) (*Response, error) {
	if sc.board == nil {
		return nil, errNoGame
	}
	settings, limit, err := sc.searchSettings(cmd.options)
	if err != nil {
		return nil, err
	}
	p, err := turnplayer.NewAIPlayer("shell", settings)
	if err != nil {
		return nil, err
	}
	m := p.GetMove(context.Background(), sc.board.Copy(), sc.board.LegalMoves(),
		search.NewTurnClock(limit))
	st := p.LastStats()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Best move for %v: %v\n", sc.board.ActivePlayer(), m)
	switch {
	case st.Book:
		sb.WriteString("(opening book)")
	case m.IsNoMove() && len(sc.board.LegalMoves()) > 0:
		fmt.Fprintf(&sb, "No search finished in %v", limit)
	default:
		fmt.Fprintf(&sb, "Score: %g  depth: %d  nodes: %d  time: %v  cut short: %v",
			st.Score, st.Depth, st.Nodes, st.Elapsed.Round(time.Millisecond), st.Cancelled)
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 1 && cmd.args[0] == "stop" {
		if !sc.stopAutoplay() {
			return nil, errors.New("no autoplay is running")
		}
		return msg("stopping autoplay..."), nil
	}
	p1, p2 := "ai", "ai:improved"
	switch len(cmd.args) {
	case 0:
	case 2:
		p1, p2 = cmd.args[0], cmd.args[1]
	default:
		return nil, errors.New("usage: autoplay [p1 p2] [-games n] [-threads t] [-file f]")
	}
	games, err := cmd.options.IntDefault("games", sc.config.GetInt(config.ConfigAutoplayGames))
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	logfile := cmd.options.String("file")
	if logfile == "" {
		logfile = sc.config.GetString(config.ConfigAutoplayLogfile)
	}
	if automatic.IsPlaying() {
		return nil, automatic.ErrAlreadyPlaying
	}

	// The match reads its own copy; `set` may change sc.config meanwhile.
	cfg := sc.config.Copy()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sc.autoplayMu.Lock()
	sc.autoplayCancel, sc.autoplayDone = cancel, done
	sc.autoplayMu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		err := automatic.StartCompVComp(ctx, cfg, p1, p2, games, threads, logfile)
		if err != nil {
			log.Error().Err(err).Msg("autoplay-failed")
			sc.notify("Error: " + err.Error())
			return
		}
		sc.notify(fmt.Sprintf("autoplay done: %d games logged to %s",
			automatic.CVCCounter.Value(), logfile))
	}()
	return msg(fmt.Sprintf("playing %d games of %s vs %s in the background; logging to %s",
		games, p1, p2, logfile)), nil
}

// stopAutoplay returns false if nothing was running.
func (sc *ShellController) stopAutoplay() bool {
	sc.autoplayMu.Lock()
	defer sc.autoplayMu.Unlock()
	if sc.autoplayCancel == nil {
		return false
	}
	select {
	case <-sc.autoplayDone:
		return false
	default:
	}
	sc.autoplayCancel()
	return true
}

func (sc *ShellController) waitForAutoplay() {
	sc.autoplayMu.Lock()
	done := sc.autoplayDone
	sc.autoplayMu.Unlock()
	if done != nil {
		<-done
	}
}

func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	var logfile string
	switch len(cmd.args) {
	case 0:
		logfile = sc.config.GetString(config.ConfigAutoplayLogfile)
	case 1:
		logfile = cmd.args[0]
	default:
		return nil, errors.New("usage: analyze [file]")
	}
	stats, err := automatic.AnalyzeLogFile(logfile)
	if err != nil {
		return nil, err
	}
	return msg(stats), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <key> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	if !lo.Contains(sc.config.AllKeys(), key) {
		return nil, fmt.Errorf("%w: no setting named %s", config.ErrBadSetting, key)
	}
	old := sc.config.Get(key)
	sc.config.Set(key, value)
	err := sc.config.Validate()
	if err == nil {
		_, err = turnplayer.SettingsFromConfig(sc.config)
	}
	if err != nil {
		sc.config.Set(key, old)
		return nil, err
	}
	return msg("set " + key + " to " + value), nil
}

func (sc *ShellController) showSettings(cmd *shellcmd) (*Response, error) {
	settings := sc.config.SanitizedSettings()
	keys := lo.Keys(settings)
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteString("Settings:\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %s: %v\n", k, settings[k])
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	if len(cmd.args) == 0 {
		usage(&sb)
	} else {
		usageTopic(&sb, cmd.args[0])
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}
