// path: cmd/replay/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"chess_arbiter/internal/archive"
	"chess_arbiter/internal/config"
	"chess_arbiter/internal/pgn"
	"chess_arbiter/internal/replay"
)

func main() {
	workers := flag.Int("workers", 0, "worker pool size (default: REPLAY_WORKERS)")
	noArchive := flag.Bool("no-archive", false, "skip the result archive even when configured")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <games.pgn>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *workers <= 0 {
		*workers = cfg.Replay.Workers
	}

	logger, err := buildLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	file, err := os.Open(filename)
	if err != nil {
		logger.Fatal("open pgn", zap.Error(err))
	}
	games, err := pgn.ReadGames(file)
	file.Close()
	if err != nil {
		logger.Fatal("split pgn", zap.Error(err))
	}
	logger.Info("replaying games",
		zap.String("file", filename),
		zap.Int("games", len(games)),
		zap.Int("workers", *workers))

	ctx := context.Background()
	runner := replay.NewRunner(*workers, logger.Named("replay"))
	summary := runner.Run(ctx, games)

	printSummary(filename, summary)

	if failed := summary.FailedRaw(); len(failed) > 0 {
		out := failedFilename(filename)
		if err := writeFailed(out, failed); err != nil {
			logger.Fatal("write failed games", zap.Error(err))
		}
		logger.Info("failed games written", zap.String("file", out), zap.Int("games", len(failed)))
	}

	if cfg.ArchiveEnabled() && !*noArchive {
		client, err := archive.Connect(ctx, cfg)
		if err != nil {
			logger.Fatal("archive connect", zap.Error(err))
		}
		defer client.Close(ctx)
		if err := client.SaveRun(ctx, filepath.Base(filename), summary); err != nil {
			logger.Fatal("archive save", zap.Error(err))
		}
		logger.Info("run archived", zap.Int("records", summary.Total))
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func printSummary(filename string, summary replay.Summary) {
	fmt.Printf("%s: %d games, %d passed, %d failed (%.2f%%)\n",
		filename, summary.Total, summary.Passed, summary.Failed, summary.PassRate())
	for _, res := range summary.Results {
		verdict := "PASS"
		if !res.Passed() {
			verdict = "FAIL"
		}
		fmt.Printf("  %-40s %s\n", res.Label, verdict)
		if !res.Passed() {
			fmt.Printf("    ply %d (%s): %v\n", res.Err.Ply, res.Err.MoveText, res.Err.Err)
		}
	}
}

func failedFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	if strings.Contains(base, "failed") {
		return filename
	}
	return base + "-failed" + ext
}

func writeFailed(filename string, games []string) error {
	var sb strings.Builder
	for _, g := range games {
		sb.WriteString(g)
		if !strings.HasSuffix(g, "\n") {
			sb.WriteString("\n")
		}
	}
	return os.WriteFile(filename, []byte(sb.String()), 0o644)
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
