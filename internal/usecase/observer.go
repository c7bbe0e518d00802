package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/standing"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/league-dashboard/internal/platform/metrics"
)

// AggregationRecorder receives skip tallies and timings from the aggregation
// services. *metrics.Manager implements it.
type AggregationRecorder interface {
	RecordSkipped(aggregate, kind string, n int)
	ObserveAggregation(aggregate string, elapsed time.Duration)
	RecordRecompute(success bool)
}

const (
	aggregateStandings  = "standings"
	aggregateTopScorers = "top_scorers"
	aggregateStats      = "division_stats"
	aggregateOverview   = "overview"
)

type noopRecorder struct{}

func (noopRecorder) RecordSkipped(string, string, int)        {}
func (noopRecorder) ObserveAggregation(string, time.Duration) {}
func (noopRecorder) RecordRecompute(bool)                     {}

// skipReporter turns skip tallies into metrics and, for records that point
// outside the division, a warning.
type skipReporter struct {
	recorder AggregationRecorder
	logger   *logging.Logger
}

func newSkipReporter(recorder AggregationRecorder, logger *logging.Logger) skipReporter {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return skipReporter{recorder: recorder, logger: logger}
}

func (r skipReporter) standings(ctx context.Context, divisionID string, skips standing.StandingsSkips) {
	if skips.Total() == 0 {
		return
	}
	r.recorder.RecordSkipped(aggregateStandings, metrics.SkipUnknownTeam, skips.UnknownTeamMatches)
	r.logger.WarnContext(ctx, "standings skipped matches with unknown teams",
		"division_id", divisionID,
		"unknown_team_matches", skips.UnknownTeamMatches,
	)
}

func (r skipReporter) scorers(ctx context.Context, divisionID string, skips standing.ScorerSkips) {
	r.recorder.RecordSkipped(aggregateTopScorers, metrics.SkipOwnGoal, skips.OwnGoals)
	r.recorder.RecordSkipped(aggregateTopScorers, metrics.SkipUnattributed, skips.Unattributed)
	r.recorder.RecordSkipped(aggregateTopScorers, metrics.SkipForeignMatch, skips.ForeignMatch)
	r.recorder.RecordSkipped(aggregateTopScorers, metrics.SkipUnknownPlayer, skips.UnknownPlayer)

	if skips.Orphans() == 0 {
		return
	}
	r.logger.WarnContext(ctx, "top scorers skipped orphaned goals",
		"division_id", divisionID,
		"foreign_match", skips.ForeignMatch,
		"unknown_player", skips.UnknownPlayer,
	)
}

func (r skipReporter) observe(aggregate string, start time.Time) {
	r.recorder.ObserveAggregation(aggregate, time.Since(start))
}
