package automatic

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"lukechampine.com/frand"
)

const seedSize = 32

// GenerateSeeds creates n random seeds, one per game.
func GenerateSeeds(n int) [][seedSize]byte {
	seeds := make([][seedSize]byte, n)
	for i := range seeds {
		frand.Read(seeds[i][:])
	}
	return seeds
}

// SaveSeeds writes one base64 seed per line.
func SaveSeeds(seeds [][seedSize]byte, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "# isolation autoplay seeds, one per game")
	for _, seed := range seeds {
		fmt.Fprintln(w, base64.RawURLEncoding.EncodeToString(seed[:]))
	}
	return w.Flush()
}

// LoadSeeds reads a file written by SaveSeeds. Blank lines and lines
// starting with # are skipped.
func LoadSeeds(path string) ([][seedSize]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var seeds [][seedSize]byte
	scanner := bufio.NewScanner(file)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("seed on line %d: %w", lineNum, err)
		}
		if len(decoded) != seedSize {
			return nil, fmt.Errorf("seed on line %d has %d bytes, expected %d",
				lineNum, len(decoded), seedSize)
		}
		var seed [seedSize]byte
		copy(seed[:], decoded)
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seeds, nil
}

// openingRNG returns the generator for a game's random opening moves.
// Without a seed the opening is random.
func openingRNG(seeds [][seedSize]byte, gameNum int) *frand.RNG {
	if len(seeds) == 0 {
		return frand.New()
	}
	seed := seeds[gameNum%len(seeds)]
	return frand.NewCustom(seed[:], 64, 12)
}
