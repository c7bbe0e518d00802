package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-dashboard/internal/domain/team"
)

type TeamRepository struct {
	mu              sync.RWMutex
	teamsByDivision map[string][]team.Team
	index           map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByDivision := make(map[string][]team.Team)
	index := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		teamsByDivision[item.DivisionID] = append(teamsByDivision[item.DivisionID], item)
		index[item.ID] = item
	}
	for _, rows := range teamsByDivision {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	}

	return &TeamRepository{teamsByDivision: teamsByDivision, index: index}
}

func (r *TeamRepository) ListByDivision(_ context.Context, divisionID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByDivision[divisionID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.index[teamID]
	return item, ok, nil
}
