// Package app wires the fetch, reduce, outcome, and render stages into a
// single report run.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/okian/birdie/internal/adapters/codegolf"
	"github.com/okian/birdie/internal/domain/cutoff"
	"github.com/okian/birdie/internal/domain/model"
	"github.com/okian/birdie/internal/domain/outcome"
	"github.com/okian/birdie/internal/domain/reduce"
	"github.com/okian/birdie/internal/render"
	"github.com/okian/birdie/pkg/logger"
	"github.com/okian/birdie/pkg/metrics"
)

// Fetcher abstracts the code.golf API for the run pipeline.
type Fetcher interface {
	Holes(ctx context.Context) ([]model.Hole, error)
	SolutionLogs(ctx context.Context, holes []model.Hole, lang string) ([]model.SolutionLog, error)
}

// Service runs one fetch-reduce-render pipeline. Each run recomputes
// everything; nothing persists between invocations.
type Service struct {
	fetcher Fetcher
	log     logger.Logger

	golferA   string
	golferB   string
	reference string

	lang          string
	cutoffSpec    string
	scoringSpec   string
	goldScopeSpec string
	barWidth      int
	nameWidth     int
	reverse       bool
	color         bool
}

// Default run configuration constants.
const (
	defaultBarWidth  = 20
	defaultNameWidth = 33
)

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		lang:          codegolf.DefaultLanguage,
		scoringSpec:   string(model.ScoringBytes),
		goldScopeSpec: string(reduce.GoldScopeLang),
		barWidth:      defaultBarWidth,
		nameWidth:     defaultNameWidth,
		color:         true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run produces the report lines: one header followed by one line per
// hole. All errors returned here are configuration or fetch failures;
// either the whole report renders or nothing does.
func (s *Service) Run(ctx context.Context) ([]string, error) {
	start := time.Now()
	if s.log == nil {
		s.log = logger.Get()
	}
	runID := uuid.NewString()

	bar, cut, mode, scope, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "starting report run",
		logger.String("runID", runID),
		logger.String("golferA", s.golferA),
		logger.String("golferB", s.golferB),
		logger.String("reference", s.reference),
		logger.String("lang", s.lang),
		logger.String("cutoff", cut.String()),
		logger.String("scoring", mode.String()),
		logger.Int("barWidth", bar.Width()))

	holes, err := s.fetcher.Holes(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.fetcher.SolutionLogs(ctx, holes, s.lang)
	if err != nil {
		return nil, err
	}

	rows, totals := s.compute(holes, logs, cut, mode, scope)

	asm := render.NewAssembler(bar,
		render.WithNameWidth(s.nameWidth),
		render.WithGolfers(s.golferA, s.golferB),
		render.WithReference(s.reference),
		render.WithReverse(s.reverse),
		render.WithColor(s.color),
	)
	lines, err := asm.Lines(rows, totals)
	if err != nil {
		return nil, err
	}

	metrics.RecordHolesReported(len(rows))
	metrics.RecordReportDuration(time.Since(start))
	s.logMetricsSummary(ctx, runID)

	s.log.Info(ctx, "report run finished",
		logger.String("runID", runID),
		logger.Int("holes", len(rows)),
		logger.Duration("elapsed", time.Since(start)))

	return lines, nil
}

// resolve validates the run configuration up front so every failure is
// reported before the first network call.
func (s *Service) resolve(ctx context.Context) (*render.Bar, cutoff.Cutoff, model.ScoringMode, reduce.GoldScope, error) {
	var (
		cut   cutoff.Cutoff
		mode  model.ScoringMode
		scope reduce.GoldScope
	)

	if s.golferA == "" || s.golferB == "" {
		return nil, cut, mode, scope, fmt.Errorf("%w: two golfer names are required", ErrEmptyGolfer)
	}
	if s.fetcher == nil {
		return nil, cut, mode, scope, ErrNoFetcher
	}
	if err := codegolf.ValidateLanguage(s.lang); err != nil {
		return nil, cut, mode, scope, err
	}

	mode, err := model.ParseScoringMode(s.scoringSpec)
	if err != nil {
		return nil, cut, mode, scope, err
	}
	scope, err = reduce.ParseGoldScope(s.goldScopeSpec)
	if err != nil {
		return nil, cut, mode, scope, err
	}
	cut, err = cutoff.Parse(s.cutoffSpec)
	if err != nil {
		return nil, cut, mode, scope, err
	}

	bar, err := render.NewBar(s.barWidth)
	if err != nil {
		return nil, cut, mode, scope, err
	}
	if bar.Width() != s.barWidth {
		s.log.Info(ctx, "score bar width adjusted for exact seam centering",
			logger.Int("configured", s.barWidth),
			logger.Int("effective", bar.Width()))
	}
	return bar, cut, mode, scope, nil
}

// compute reduces every hole in canonical catalog order and tallies the
// two primary golfers' outcomes. The reference golfer gets a best score
// per hole but never participates in outcome scoring.
func (s *Service) compute(holes []model.Hole, logs []model.SolutionLog, cut cutoff.Cutoff, mode model.ScoringMode, scope reduce.GoldScope) ([]render.Row, outcome.Totals) {
	golfers := []string{s.golferA, s.golferB}
	if s.reference != "" {
		golfers = append(golfers, s.reference)
	}

	byHole := make(map[string][]model.Solution, len(logs))
	for _, l := range logs {
		byHole[l.HoleID] = l.Solutions
	}

	rows := make([]render.Row, 0, len(holes))
	verdicts := make([]outcome.Verdict, 0, len(holes))
	for _, hole := range holes {
		res := reduce.Hole(byHole[hole.ID], mode, cut, golfers, scope)
		verdict := outcome.Compare(res.Best[s.golferA], res.Best[s.golferB])
		verdicts = append(verdicts, verdict)
		rows = append(rows, render.Row{
			Hole:    hole,
			A:       res.Best[s.golferA],
			B:       res.Best[s.golferB],
			Ref:     res.Best[s.reference],
			HasRef:  s.reference != "",
			Gold:    res.Gold,
			Verdict: verdict,
		})
	}

	return rows, outcome.Tally(verdicts)
}

func (s *Service) logMetricsSummary(ctx context.Context, runID string) {
	summary, err := metrics.Summary()
	if err != nil {
		s.log.Warn(ctx, "failed to gather metrics summary", logger.Error(err))
		return
	}
	fields := []logger.Field{logger.String("runID", runID)}
	for _, k := range metrics.SummaryKeys(summary) {
		fields = append(fields, logger.Any(k, summary[k]))
	}
	s.log.Debug(ctx, "run metrics", fields...)
}
