package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

var errEmptyLog = errors.New("log has no games")

// readCSV reads a file with a header row into one map per record.
func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r := csv.NewReader(file)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			row[h] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func meanStdDev(xs []float64) (float64, float64) {
	switch len(xs) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}

// AnalyzeLogFile summarises the match logged to turnLogPath (and its games
// log, see GamesLogPath): results, forfeits, game lengths and how deep
// each player managed to search.
func AnalyzeLogFile(turnLogPath string) (string, error) {
	games, err := readCSV(GamesLogPath(turnLogPath))
	if err != nil {
		return "", err
	}
	if len(games) == 0 {
		return "", errEmptyLog
	}
	turns, err := readCSV(turnLogPath)
	if err != nil {
		return "", err
	}

	p1Name, p2Name := games[0]["p1"], games[0]["p2"]
	wins := map[string]float64{}
	forfeits := map[string]map[string]int{}
	wentFirstWins := 0
	plies := make([]float64, 0, len(games))

	for _, g := range games {
		wins[g["winner"]]++
		if g["winner"] == g["first"] {
			wentFirstWins++
		}
		if reason := g["reason"]; reason != string(ReasonNormal) {
			loser := p1Name
			if g["winner"] == p1Name {
				loser = p2Name
			}
			if forfeits[loser] == nil {
				forfeits[loser] = map[string]int{}
			}
			forfeits[loser][reason]++
		}
		n, err := strconv.Atoi(g["plies"])
		if err != nil {
			return "", fmt.Errorf("game %s: %w", g["gameID"], err)
		}
		plies = append(plies, float64(n))
	}

	searched := lo.Filter(turns, func(t map[string]string, _ int) bool {
		return t["book"] != "true"
	})
	depths := map[string][]float64{}
	cancelled := map[string]int{}
	var allDepths []float64
	for _, t := range searched {
		d, err := strconv.Atoi(t["depth"])
		if err != nil {
			return "", fmt.Errorf("game %s ply %s: %w", t["gameID"], t["ply"], err)
		}
		depths[t["player"]] = append(depths[t["player"]], float64(d))
		allDepths = append(allDepths, float64(d))
		if t["cancelled"] == "true" {
			cancelled[t["player"]]++
		}
	}

	n := float64(len(games))
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", len(games))
	for _, name := range []string{p1Name, p2Name} {
		fmt.Fprintf(&sb, "%v wins: %.1f (%.3f%%)\n", name, wins[name], 100.0*wins[name]/n)
	}
	fmt.Fprintf(&sb, "Player who went first wins: %d (%.3f%%)\n",
		wentFirstWins, 100.0*float64(wentFirstWins)/n)
	for _, name := range []string{p1Name, p2Name} {
		reasons := lo.Keys(forfeits[name])
		sort.Strings(reasons)
		for _, reason := range reasons {
			fmt.Fprintf(&sb, "%v lost by %s: %d\n", name, reason, forfeits[name][reason])
		}
	}
	mean, sd := meanStdDev(plies)
	fmt.Fprintf(&sb, "Game length: mean %.3f plies  stdev %.3f\n", mean, sd)
	for _, name := range []string{p1Name, p2Name} {
		mean, sd := meanStdDev(depths[name])
		fmt.Fprintf(&sb, "%v search depth: mean %.3f  stdev %.3f  turns %d  cut short %d\n",
			name, mean, sd, len(depths[name]), cancelled[name])
	}
	if len(allDepths) > 0 && lo.Min(allDepths) < lo.Max(allDepths) {
		sb.WriteString("Search depth histogram:\n")
		hist := histogram.Hist(10, allDepths)
		if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
