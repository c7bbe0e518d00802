package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-dashboard/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/league-dashboard/internal/platform/querybuilder"
)

const seedConflictSuffix = "ON CONFLICT (id) DO NOTHING"

// BootstrapSeed loads the demo league into an empty database. It is a no-op
// once any division exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM divisions`); err != nil {
		return fmt.Errorf("count divisions for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	divisions := make([]divisionTableModel, 0)
	for i, d := range memory.SeedDivisions() {
		divisions = append(divisions, divisionTableModel{
			ID:        d.ID,
			LeagueID:  d.LeagueID,
			Name:      d.Name,
			ShortName: d.ShortName,
			AgeGroup:  d.AgeGroup,
			SortOrder: i,
		})
	}
	teams := make([]teamTableModel, 0)
	for _, t := range memory.SeedTeams() {
		teams = append(teams, teamTableModel{
			ID:         t.ID,
			DivisionID: t.DivisionID,
			Name:       t.Name,
			ShortName:  t.ShortName,
			BadgeURL:   t.BadgeURL,
		})
	}
	players := make([]playerTableModel, 0)
	for _, p := range memory.SeedPlayers() {
		players = append(players, playerModelFromDomain(p))
	}
	matches := make([]matchTableModel, 0)
	for _, m := range memory.SeedMatches() {
		matches = append(matches, matchModelFromDomain(m))
	}
	goals := make([]goalTableModel, 0)
	for _, g := range memory.SeedGoals() {
		goals = append(goals, goalModelFromDomain(g))
	}
	headlines := make([]headlineTableModel, 0)
	for _, h := range memory.SeedHeadlines() {
		headlines = append(headlines, headlineModelFromDomain(h))
	}

	// Parent tables first so foreign keys resolve.
	steps := []struct {
		table  string
		models []any
	}{
		{table: "divisions", models: modelsToAny(divisions)},
		{table: "teams", models: modelsToAny(teams)},
		{table: "players", models: modelsToAny(players)},
		{table: "matches", models: modelsToAny(matches)},
		{table: "goals", models: modelsToAny(goals)},
		{table: "headlines", models: modelsToAny(headlines)},
	}
	for _, step := range steps {
		if len(step.models) == 0 {
			continue
		}
		query, args, err := qb.InsertModels(step.table, step.models, seedConflictSuffix)
		if err != nil {
			return fmt.Errorf("build seed %s query: %w", step.table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
