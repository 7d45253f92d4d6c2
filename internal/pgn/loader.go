// path: internal/pgn/loader.go

// Package pgn extracts tag pairs and move tokens from PGN text. It is
// a tokenizer, not a validator: move legality is the engine's job.
package pgn

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	tagPattern = regexp.MustCompile(`\[(\w+) "(.*)"\]`)
	// movePattern accepts SAN-like tokens including promotions and
	// castles. Move numbers and results never end in a destination
	// square, so they fall through without a match.
	movePattern = regexp.MustCompile(`(?:[NBRQK]?[a-h]?[1-8]?x?[a-h][1-8](?:=[NBRQ])?|O-O(?:-O)?)[+#]?`)
	comments    = regexp.MustCompile(`\{[^}]*\}`)
)

// Game is one tokenized PGN game.
type Game struct {
	Tags  map[string]string // keys lowercased
	Moves []string
	Raw   string
}

// Parse tokenizes a single game's PGN text.
func Parse(raw string) Game {
	g := Game{Tags: map[string]string{}, Raw: raw}
	for _, m := range tagPattern.FindAllStringSubmatch(raw, -1) {
		g.Tags[strings.ToLower(m[1])] = m[2]
	}
	var moveLines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "[") {
			continue
		}
		moveLines = append(moveLines, line)
	}
	body := comments.ReplaceAllString(strings.Join(moveLines, "\n"), "")
	g.Moves = movePattern.FindAllString(body, -1)
	return g
}

// Tag returns a tag value by case-insensitive name, "" when absent.
func (g Game) Tag(name string) string {
	return g.Tags[strings.ToLower(name)]
}

// VersusLabel names the game by its players.
func (g Game) VersusLabel() string {
	white, black := g.Tag("White"), g.Tag("Black")
	if white == "" && black == "" {
		return "unknown v. unknown"
	}
	return fmt.Sprintf("%s v. %s", white, black)
}

// splitter states for ReadGames.
const (
	stateTags      = iota // capturing tag lines
	stateAfterTags        // saw the blank line ending the tag section
	stateMoves            // capturing move lines
)

// ReadGames splits a multi-game PGN stream into raw per-game texts.
// The expected shape is tag section, blank line, move section, blank
// line, repeated; deviations are reported as errors rather than
// guessed around.
func ReadGames(r io.Reader) ([]string, error) {
	var (
		games []string
		game  []string
		state = stateTags
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "["):
			if state != stateTags {
				return nil, fmt.Errorf("pgn: tag line inside the move section: %q", line)
			}
			game = append(game, line)
		case line == "":
			switch state {
			case stateTags:
				if len(game) == 0 {
					continue // leading blank lines
				}
				state = stateAfterTags
				game = append(game, "")
			case stateMoves:
				state = stateTags
				game = append(game, "")
				games = append(games, strings.Join(game, "\n"))
				game = nil
			case stateAfterTags:
				return nil, fmt.Errorf("pgn: blank line before any moves")
			}
		default:
			if state == stateAfterTags {
				state = stateMoves
			}
			if state != stateMoves {
				return nil, fmt.Errorf("pgn: move line inside the tag section: %q", line)
			}
			game = append(game, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pgn: read: %w", err)
	}
	// A final game without a trailing blank line still counts.
	if state == stateMoves && len(game) > 0 {
		games = append(games, strings.Join(game, "\n"))
	}
	return games, nil
}
