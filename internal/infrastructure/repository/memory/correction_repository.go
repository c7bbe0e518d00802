package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-dashboard/internal/domain/correction"
)

type CorrectionRepository struct {
	mu    sync.RWMutex
	items map[string]correction.Correction
}

func NewCorrectionRepository() *CorrectionRepository {
	return &CorrectionRepository{items: make(map[string]correction.Correction)}
}

func (r *CorrectionRepository) Create(_ context.Context, item correction.Correction) (correction.Correction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.Status == "" {
		item.Status = correction.StatusPending
	}
	r.items[item.ID] = cloneCorrection(item)
	return cloneCorrection(item), nil
}

func (r *CorrectionRepository) List(_ context.Context, limit int) ([]correction.Correction, error) {
	r.mu.RLock()
	out := make([]correction.Correction, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneCorrection(item))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *CorrectionRepository) Update(_ context.Context, correctionID string, patch correction.Patch) (correction.Correction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[correctionID]
	if !ok {
		return correction.Correction{}, false, nil
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.SetNotes {
		item.Notes = nil
		if patch.Notes != nil {
			notes := *patch.Notes
			item.Notes = &notes
		}
	}
	r.items[correctionID] = item
	return cloneCorrection(item), true, nil
}

func cloneCorrection(item correction.Correction) correction.Correction {
	if item.Notes != nil {
		notes := *item.Notes
		item.Notes = &notes
	}
	return item
}
