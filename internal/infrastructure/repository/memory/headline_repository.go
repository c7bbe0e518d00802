package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
)

type HeadlineRepository struct {
	mu    sync.RWMutex
	items map[string]headline.Headline
}

func NewHeadlineRepository(headlines []headline.Headline) *HeadlineRepository {
	items := make(map[string]headline.Headline, len(headlines))
	for _, h := range headlines {
		items[h.ID] = h
	}
	return &HeadlineRepository{items: items}
}

func (r *HeadlineRepository) ListByDivision(_ context.Context, divisionID string, limit int) ([]headline.Headline, error) {
	r.mu.RLock()
	out := make([]headline.Headline, 0)
	for _, h := range r.items {
		if h.DivisionID == divisionID {
			out = append(out, h)
		}
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

func (r *HeadlineRepository) GetByID(_ context.Context, headlineID string) (headline.Headline, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.items[headlineID]
	return h, ok, nil
}

func (r *HeadlineRepository) Create(_ context.Context, item headline.Headline) (headline.Headline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return item, nil
}

// Update keeps the original creation time so listings stay stable.
func (r *HeadlineRepository) Update(_ context.Context, item headline.Headline) (headline.Headline, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return headline.Headline{}, false, nil
	}
	item.CreatedAt = existing.CreatedAt
	r.items[item.ID] = item
	return item, true, nil
}

func (r *HeadlineRepository) Delete(_ context.Context, headlineID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[headlineID]; !ok {
		return false, nil
	}
	delete(r.items, headlineID)
	return true, nil
}
