// Package shell is an interactive command shell for setting up Isolation
// positions, searching them and running computer vs computer matches.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/isolation/board"
	"github.com/domino14/isolation/config"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please start a game first with the `new` or `load` command")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func isOption(field string) bool {
	return len(field) > 1 && field[0] == '-' && unicode.IsLetter(rune(field[1]))
}

// extractFields splits a line into a command, its positional arguments
// and its -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if !isOption(fields[i]) {
			args = append(args, fields[i])
			continue
		}
		if i+1 >= len(fields) {
			return nil, errWrongOptionSyntax
		}
		key := strings.TrimPrefix(fields[i], "-")
		options[key] = append(options[key], fields[i+1])
		i++
	}
	return &shellcmd{cmd: fields[0], args: args, options: options}, nil
}

type ShellController struct {
	l          *readline.Instance
	out        io.Writer
	config     *config.Config
	execPath   string
	gitVersion string

	board *board.GameBoard

	autoplayMu     sync.Mutex
	autoplayCancel context.CancelFunc
	autoplayDone   chan struct{}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

// notify shows a message from a background task and redraws the prompt.
func (sc *ShellController) notify(msg string) {
	sc.showMessage(msg)
	if sc.l != nil {
		sc.l.Refresh()
	}
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func newController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{config: cfg, out: out}
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := newController(cfg, os.Stderr)
	sc.execPath = execPath
	sc.gitVersion = gitVersion

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31misolation>\033[0m ",
		HistoryFile:     "/tmp/isolation_readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new", "n":
		return sc.newGame(cmd)
	case "load":
		return sc.load(cmd)
	case "save":
		return sc.save(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "moves", "m":
		return sc.moves(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "search":
		return sc.searchPosition(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "analyze":
		return sc.analyze(cmd)
	case "set":
		return sc.set(cmd)
	case "settings":
		return sc.showSettings(cmd)
	case "help":
		return sc.help(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

// Execute runs a single command line, as given on the command line of the
// binary.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.handle(line)
	if err != nil {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
	// autoplay runs in the background; wait for it before returning.
	sc.waitForAutoplay()
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	if sc.gitVersion != "" {
		sc.showMessage("isolation " + sc.gitVersion)
	}
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.handle(line)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup stops any running autoplay and waits for it to finish.
func (sc *ShellController) Cleanup() {
	sc.stopAutoplay()
	sc.waitForAutoplay()
}
