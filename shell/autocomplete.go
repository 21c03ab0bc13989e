package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/isolation/config"
	"github.com/domino14/isolation/equity"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // e.g. "-depth", "-threads"
	Args    []string // values for positional arguments
}

var playerDescriptions = []string{
	"ai", "alphabeta", "minimax", "greedy", "random",
	"ai:improved", "ai:pro-self", "ai:anti-opponent", "ai:free-space",
}

var commandMetadata = map[string]CommandMetadata{
	"search": {
		Options: []string{"-depth", "-method", "-iterative", "-time", "-eval"},
	},
	"autoplay": {
		Options: []string{"-games", "-threads", "-file"},
		Args:    append([]string{"stop"}, playerDescriptions...),
	},
	"set": {
		Args: []string{
			config.ConfigSearchDepth, config.ConfigMaxDepth, config.ConfigIterative,
			config.ConfigSearchMethod, config.ConfigEvaluator, config.ConfigTimerThresholdMS,
			config.ConfigTurnTimeLimitMS, config.ConfigBoardWidth, config.ConfigBoardHeight,
			config.ConfigAutoplayGames, config.ConfigAutoplayThreads, config.ConfigAutoplayLogfile,
			config.ConfigAutoplaySeedFile,
		},
	},
	"help": {
		Args: []string{"search", "autoplay"},
	},
}

var commandNames = []string{
	"help", "new", "n", "load", "save", "show", "s", "moves", "m", "play", "p",
	"search", "autoplay", "analyze", "set", "settings", "exit",
}

var boolValues = []string{"true", "false"}
var methodValues = []string{"alphabeta", "minimax"}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case lastCompleteField == "-method",
			cmdName == "set" && lastCompleteField == config.ConfigSearchMethod:
			completions = methodValues
		case lastCompleteField == "-eval",
			cmdName == "set" && lastCompleteField == config.ConfigEvaluator:
			completions = equity.Names()
		case lastCompleteField == "-iterative",
			cmdName == "set" && lastCompleteField == config.ConfigIterative:
			completions = boolValues
		case strings.HasPrefix(lastCompleteField, "-"):
			// A free-form option value.
			return nil, len(prefix)
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
