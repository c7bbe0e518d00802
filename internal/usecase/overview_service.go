package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/standing"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

const overviewTopScorers = 10

type DivisionOverview struct {
	DivisionID    string
	Standings     []standing.Row
	Stats         standing.DivisionStats
	TopScorers    []standing.ScorerRow
	LatestResults []LatestResult
	Headlines     []headline.Headline
}

// OverviewService assembles the division landing page from one round of
// concurrent reads.
type OverviewService struct {
	standings *StandingService
	results   *ResultService
	headlines *HeadlineService
}

func NewOverviewService(standings *StandingService, results *ResultService, headlines *HeadlineService) *OverviewService {
	return &OverviewService{
		standings: standings,
		results:   results,
		headlines: headlines,
	}
}

func (s *OverviewService) Overview(ctx context.Context, divisionID string) (DivisionOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Overview", divisionAttr(divisionID))
	defer span.End()
	defer s.standings.skips.observe(aggregateOverview, time.Now())

	var (
		teams     []team.Team
		matches   []match.Match
		latest    []LatestResult
		headlines []headline.Headline
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		teams, matches, err = s.standings.loadTable(ctx, divisionID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.results.LatestResults(ctx, divisionID, DefaultLatestResultsLimit)
		if err != nil {
			return fmt.Errorf("latest results: %w", err)
		}
		latest = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.headlines.ListByDivision(ctx, divisionID, DefaultHeadlineLimit)
		if err != nil {
			return err
		}
		headlines = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return DivisionOverview{}, err
	}

	goals, players, err := s.standings.loadScoring(ctx, teams, matches)
	if err != nil {
		return DivisionOverview{}, err
	}

	rows := s.standings.standings(ctx, divisionID, teams, matches)
	scorers := s.standings.topScorers(ctx, divisionID, teams, matches, goals, players)

	return DivisionOverview{
		DivisionID:    divisionID,
		Standings:     rows,
		Stats:         standing.ComputeDivisionStats(rows),
		TopScorers:    limitScorers(scorers, overviewTopScorers),
		LatestResults: latest,
		Headlines:     headlines,
	}, nil
}
