// path: internal/replay/runner.go

// Package replay plays batches of PGN games against the rule engine,
// one independent Game per worker, and reports which games the engine
// refuses.
package replay

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"chess_arbiter/internal/game"
	"chess_arbiter/internal/pgn"
)

// GameError is a move the engine rejected, with enough context to
// reproduce it: which game, which ply, which token, and the board at
// the moment of failure.
type GameError struct {
	Label    string
	Ply      int
	MoveText string
	Board    string
	Err      error
}

func (e *GameError) Error() string {
	return fmt.Sprintf("%s: ply %d (%s): %v\n%s", e.Label, e.Ply, e.MoveText, e.Err, e.Board)
}

func (e *GameError) Unwrap() error { return e.Err }

// Result is the outcome of replaying one game.
type Result struct {
	Index    int
	Label    string
	Moves    int
	FinalFEN string
	Err      *GameError
	Raw      string
}

// Passed reports whether every move of the game was accepted.
func (r Result) Passed() bool { return r.Err == nil }

// Summary aggregates a batch run. Results are ordered by input index.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Results []Result
}

// PassRate is the fraction of accepted games, in percent.
func (s Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// FailedRaw returns the raw texts of the failed games, for re-export.
func (s Summary) FailedRaw() []string {
	var out []string
	for _, r := range s.Results {
		if !r.Passed() {
			out = append(out, r.Raw)
		}
	}
	return out
}

// Runner fans raw game texts out over a fixed worker pool. The games
// share nothing, so the workers need no coordination beyond the work
// and result channels.
type Runner struct {
	workers int
	log     *zap.Logger
}

// NewRunner returns a runner with the given pool size; anything below
// one worker is clamped to one. The logger may be nil.
func NewRunner(workers int, log *zap.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{workers: workers, log: log}
}

type workItem struct {
	index int
	raw   string
}

// Run replays every game and collects the outcomes. Cancelling the
// context stops feeding the pool; games already in flight finish.
func (r *Runner) Run(ctx context.Context, rawGames []string) Summary {
	work := make(chan workItem)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				results <- PlayGame(item.index, item.raw)
			}
		}()
	}

	go func() {
		defer close(work)
		for i, raw := range rawGames {
			select {
			case <-ctx.Done():
				return
			case work <- workItem{index: i, raw: raw}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	summary := Summary{Results: make([]Result, 0, len(rawGames))}
	for res := range results {
		summary.Total++
		if res.Passed() {
			summary.Passed++
		} else {
			summary.Failed++
			r.log.Warn("game failed",
				zap.String("game", res.Label),
				zap.Int("ply", res.Err.Ply),
				zap.String("move", res.Err.MoveText),
				zap.Error(res.Err.Err))
		}
		summary.Results = append(summary.Results, res)
	}
	sortResults(summary.Results)
	return summary
}

func sortResults(results []Result) {
	// Insertion sort; batches are result-channel shuffled but small.
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j].Index < results[j-1].Index; j-- {
			results[j], results[j-1] = results[j-1], results[j]
		}
	}
}

// PlayGame replays one raw PGN game on a fresh engine.
func PlayGame(index int, raw string) Result {
	parsed := pgn.Parse(raw)
	res := Result{Index: index, Label: parsed.VersusLabel(), Raw: raw}

	g := game.NewGame(nil)
	for ply, moveText := range parsed.Moves {
		if err := g.MakeCompactMove(moveText); err != nil {
			res.Err = &GameError{
				Label:    res.Label,
				Ply:      ply + 1,
				MoveText: moveText,
				Board:    g.Board().Text(),
				Err:      err,
			}
			return res
		}
		res.Moves++
	}
	res.FinalFEN = g.ExportFEN()
	return res
}
