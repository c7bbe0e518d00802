package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-dashboard/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	index map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = clonePlayer(p)
	}

	return &PlayerRepository{index: index}
}

func (r *PlayerRepository) ListByTeams(_ context.Context, teamIDs []string) ([]player.Player, error) {
	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.index {
		if _, ok := wanted[p.TeamID]; ok {
			out = append(out, clonePlayer(p))
		}
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) ListByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.index[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, clonePlayer(p))
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index[item.ID] = clonePlayer(item)
	return clonePlayer(item), nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[item.ID]; !ok {
		return player.Player{}, false, nil
	}
	r.index[item.ID] = clonePlayer(item)
	return clonePlayer(item), true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[playerID]; !ok {
		return false, nil
	}
	delete(r.index, playerID)
	return true, nil
}

func clonePlayer(p player.Player) player.Player {
	if p.Number != nil {
		n := *p.Number
		p.Number = &n
	}
	return p
}

func sortPlayers(items []player.Player) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
