package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	"github.com/riskibarqy/league-dashboard/internal/domain/standing"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
)

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"

	defaultRecomputeWorkers = 4
	maxRecomputeWorkers     = 16
)

type RecomputeInput struct {
	DivisionIDs []string
	MaxWorkers  int
}

type RecomputeResult struct {
	DivisionCount int                       `json:"divisionCount"`
	SuccessCount  int                       `json:"successCount"`
	FailedCount   int                       `json:"failedCount"`
	WorkerCount   int                       `json:"workerCount"`
	Divisions     []RecomputeDivisionResult `json:"divisions"`
}

type RecomputeDivisionResult struct {
	DivisionID        string `json:"divisionId"`
	Status            string `json:"status"`
	Rows              int    `json:"rows"`
	Scorers           int    `json:"scorers"`
	SkippedMatches    int    `json:"skippedMatches"`
	SkippedOwnGoals   int    `json:"skippedOwnGoals"`
	SkippedOrphans    int    `json:"skippedOrphans"`
	UnattributedGoals int    `json:"unattributedGoals"`
	DurationMs        int64  `json:"durationMs"`
	Message           string `json:"message,omitempty"`
}

// RecomputeService rebuilds every division's table and leaderboard in one
// pass. Nothing is persisted; the run is a data-quality sweep whose skip
// counts feed the same metrics as live reads.
type RecomputeService struct {
	divisionRepo division.Repository
	standings    *StandingService
	recorder     AggregationRecorder
	logger       *logging.Logger

	defaultWorkers int
}

func NewRecomputeService(divisionRepo division.Repository, standings *StandingService, recorder AggregationRecorder, logger *logging.Logger) *RecomputeService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RecomputeService{
		divisionRepo:   divisionRepo,
		standings:      standings,
		recorder:       recorder,
		logger:         logger,
		defaultWorkers: defaultRecomputeWorkers,
	}
}

// WithDefaultWorkers sets the pool size used when a run does not ask for one.
func (s *RecomputeService) WithDefaultWorkers(n int) *RecomputeService {
	if n > 0 {
		s.defaultWorkers = n
	}
	return s
}

func (s *RecomputeService) RecomputeAll(ctx context.Context, input RecomputeInput) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.RecomputeAll")
	defer span.End()

	targets, err := s.resolveTargets(ctx, input.DivisionIDs)
	if err != nil {
		return RecomputeResult{}, err
	}

	workerCount := normalizeRecomputeWorkerCount(input.MaxWorkers, s.defaultWorkers, len(targets))
	result := RecomputeResult{
		DivisionCount: len(targets),
		WorkerCount:   workerCount,
		Divisions:     make([]RecomputeDivisionResult, 0, len(targets)),
	}
	if len(targets) == 0 {
		return result, nil
	}

	results := make(chan RecomputeDivisionResult, len(targets))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, divisionID := range targets {
		divisionID := divisionID
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			row := s.recomputeDivision(ctx, divisionID)
			if row.Status == recomputeStatusSuccess {
				successCount.Add(1)
			} else {
				failedCount.Add(1)
			}
			s.recorder.RecordRecompute(row.Status == recomputeStatusSuccess)
			results <- row
		}); err != nil {
			workers.Done()
			return RecomputeResult{}, fmt.Errorf("submit division to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Divisions = append(result.Divisions, row)
	}
	sort.SliceStable(result.Divisions, func(i, j int) bool {
		return result.Divisions[i].DivisionID < result.Divisions[j].DivisionID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	s.logger.InfoContext(ctx, "recompute standings finished",
		"divisions", result.DivisionCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"workers", result.WorkerCount,
	)
	return result, nil
}

func (s *RecomputeService) recomputeDivision(ctx context.Context, divisionID string) RecomputeDivisionResult {
	start := time.Now()
	row := RecomputeDivisionResult{DivisionID: divisionID, Status: recomputeStatusFailed}

	teams, matches, err := s.standings.loadTable(ctx, divisionID)
	if err != nil {
		row.Message = err.Error()
		row.DurationMs = time.Since(start).Milliseconds()
		return row
	}
	goals, players, err := s.standings.loadScoring(ctx, teams, matches)
	if err != nil {
		row.Message = err.Error()
		row.DurationMs = time.Since(start).Milliseconds()
		return row
	}

	rows, tableSkips := standing.ComputeStandingsReport(teams, matches)
	scorers, scorerSkips := standing.ComputeTopScorersReport(teams, matchIDSet(matches), goals, players)
	s.standings.skips.standings(ctx, divisionID, tableSkips)
	s.standings.skips.scorers(ctx, divisionID, scorerSkips)

	row.Status = recomputeStatusSuccess
	row.Rows = len(rows)
	row.Scorers = len(scorers)
	row.SkippedMatches = tableSkips.UnknownTeamMatches
	row.SkippedOwnGoals = scorerSkips.OwnGoals
	row.SkippedOrphans = scorerSkips.Orphans()
	row.UnattributedGoals = scorerSkips.Unattributed
	row.DurationMs = time.Since(start).Milliseconds()
	return row
}

func (s *RecomputeService) resolveTargets(ctx context.Context, requested []string) ([]string, error) {
	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}

	known := make(map[string]struct{}, len(divisions))
	all := make([]string, 0, len(divisions))
	for _, item := range divisions {
		known[item.ID] = struct{}{}
		all = append(all, item.ID)
	}
	if len(requested) == 0 {
		return all, nil
	}

	out := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		if _, ok := known[id]; !ok {
			return nil, notFound("division", id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func normalizeRecomputeWorkerCount(value, fallback, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = fallback
	}
	if value <= 0 {
		value = defaultRecomputeWorkers
	}
	if value > maxRecomputeWorkers {
		value = maxRecomputeWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
