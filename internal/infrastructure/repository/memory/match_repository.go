package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
)

// MatchRepository keeps matches and their goals behind one lock so a match
// write and its goal replacement are observed together.
type MatchRepository struct {
	mu           sync.RWMutex
	matches      map[string]match.Match
	goalsByMatch map[string][]match.Goal
}

func NewMatchRepository(matches []match.Match, goals []match.Goal) *MatchRepository {
	r := &MatchRepository{
		matches:      make(map[string]match.Match, len(matches)),
		goalsByMatch: make(map[string][]match.Goal),
	}
	for _, m := range matches {
		r.matches[m.ID] = m
	}
	for _, g := range goals {
		r.goalsByMatch[g.MatchID] = append(r.goalsByMatch[g.MatchID], cloneGoal(g))
	}
	return r
}

func (r *MatchRepository) ListByDivision(_ context.Context, divisionID string) ([]match.Match, error) {
	out := r.filter(func(m match.Match) bool { return m.DivisionID == divisionID })
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.Before(out[j].MatchDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) ListRecentByDivision(_ context.Context, divisionID string, limit int) ([]match.Match, error) {
	out := r.filter(func(m match.Match) bool { return m.DivisionID == divisionID })
	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, divisionID, teamID string) ([]match.Match, error) {
	out := r.filter(func(m match.Match) bool { return m.DivisionID == divisionID && m.Involves(teamID) })
	sortNewestFirst(out)
	return out, nil
}

func (r *MatchRepository) filter(keep func(match.Match) bool) []match.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.matches {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	return m, ok, nil
}

func (r *MatchRepository) ListGoalsByMatches(_ context.Context, matchIDs []string) ([]match.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Goal, 0)
	seen := make(map[string]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		for _, g := range r.goalsByMatch[id] {
			out = append(out, cloneGoal(g))
		}
	}
	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match, goals []match.Goal) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[item.ID] = item
	r.replaceGoals(item.ID, goals)
	return item, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match, goals []match.Goal) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[item.ID]; !ok {
		return match.Match{}, false, nil
	}
	r.matches[item.ID] = item
	r.replaceGoals(item.ID, goals)
	return item, true, nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.goalsByMatch, matchID)
	if _, ok := r.matches[matchID]; !ok {
		return false, nil
	}
	delete(r.matches, matchID)
	return true, nil
}

// replaceGoals must be called with the write lock held.
func (r *MatchRepository) replaceGoals(matchID string, goals []match.Goal) {
	if len(goals) == 0 {
		delete(r.goalsByMatch, matchID)
		return
	}
	rows := make([]match.Goal, 0, len(goals))
	for _, g := range goals {
		g.MatchID = matchID
		rows = append(rows, cloneGoal(g))
	}
	r.goalsByMatch[matchID] = rows
}

func cloneGoal(g match.Goal) match.Goal {
	if g.Minute != nil {
		minute := *g.Minute
		g.Minute = &minute
	}
	return g
}

func sortNewestFirst(items []match.Match) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].MatchDate.Equal(items[j].MatchDate) {
			return items[i].MatchDate.After(items[j].MatchDate)
		}
		return items[i].ID > items[j].ID
	})
}
