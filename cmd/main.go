package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/okian/birdie/internal/adapters/codegolf"
	"github.com/okian/birdie/internal/app"
	"github.com/okian/birdie/internal/config"
	"github.com/okian/birdie/pkg/logger"
	"github.com/okian/birdie/pkg/metrics"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("birdie: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env); CLI flags
	// below default to the loaded values, so flags win.
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	cli := kingpin.New("birdie", "Head-to-head code.golf scoreboard: compare two golfers' best submissions across every hole.")
	golferA := cli.Arg("golfer-a", "First golfer (the left side of every bar).").Required().String()
	golferB := cli.Arg("golfer-b", "Second golfer (the right side of every bar).").Required().String()
	lang := cli.Flag("lang", "Submission language filter.").Default(cfg.Lang).String()
	cutoffSpec := cli.Flag("cutoff", "As-of boundary: YYYY, YYYY-MM, YYYY-MM-DD, or \"YYYY-MM-DD HH:MM[:SS]\". Empty includes everything.").Default(cfg.Cutoff).String()
	scoring := cli.Flag("scoring", "Length metric: bytes or chars.").Default(cfg.Scoring).Enum("bytes", "chars")
	goldScope := cli.Flag("gold-scope", "Gold population: lang (whole leaderboard) or golfers (compared golfers only).").Default(cfg.GoldScope).Enum("lang", "golfers")
	barWidth := cli.Flag("score-bar-width", "Total score bar width in cells; odd widths are bumped by one.").Default(strconv.Itoa(cfg.ScoreBarWidth)).Int()
	nameWidth := cli.Flag("hole-name-width", "Hole name column width.").Default(strconv.Itoa(cfg.HoleNameWidth)).Int()
	reference := cli.Flag("reference", "Optional third golfer shown as an overlay marker only.").String()
	reverse := cli.Flag("reverse", "Reverse the final row order.").Default(strconv.FormatBool(cfg.Reverse)).Bool()
	noColor := cli.Flag("no-color", "Disable ANSI color.").Default(strconv.FormatBool(cfg.NoColor)).Bool()
	baseURL := cli.Flag("base-url", "code.golf API base URL.").Default(cfg.BaseURL).String()
	timeout := cli.Flag("timeout", "Per-request HTTP timeout.").Default((time.Duration(cfg.TimeoutMS) * time.Millisecond).String()).Duration()
	retries := cli.Flag("retries", "Attempt budget per solutions-log fetch.").Default(strconv.Itoa(cfg.Retries)).Int()
	workers := cli.Flag("workers", "Concurrent per-hole fetches.").Default(strconv.Itoa(cfg.Workers)).Int()
	logLevel := cli.Flag("log-level", "Log verbosity: debug, info, warn, error.").Default(cfg.LogLevel).String()

	if _, err := cli.Parse(os.Args[1:]); err != nil {
		return err
	}

	log := logger.Get()
	if err := logger.SetLevelString(*logLevel); err != nil {
		log.Warn(ctx, "invalid log level; falling back to info", logger.String("logLevel", *logLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := metrics.Init(); err != nil {
		return err
	}

	client := codegolf.New(
		codegolf.WithBaseURL(*baseURL),
		codegolf.WithTimeout(*timeout),
		codegolf.WithRetries(*retries),
		codegolf.WithWorkers(*workers),
		codegolf.WithLogger(log),
	)

	svc := app.New(
		app.WithFetcher(client),
		app.WithLogger(log),
		app.WithGolfers(*golferA, *golferB),
		app.WithReference(*reference),
		app.WithLanguage(*lang),
		app.WithCutoff(*cutoffSpec),
		app.WithScoring(*scoring),
		app.WithGoldScope(*goldScope),
		app.WithBarWidth(*barWidth),
		app.WithNameWidth(*nameWidth),
		app.WithReverse(*reverse),
		app.WithColor(!*noColor),
	)

	lines, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
