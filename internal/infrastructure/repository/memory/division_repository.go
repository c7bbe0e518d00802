package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-dashboard/internal/domain/division"
)

type DivisionRepository struct {
	mu     sync.RWMutex
	items  map[string]division.Division
	orders []string
}

func NewDivisionRepository(divisions []division.Division) *DivisionRepository {
	items := make(map[string]division.Division, len(divisions))
	orders := make([]string, 0, len(divisions))

	for _, d := range divisions {
		items[d.ID] = d
		orders = append(orders, d.ID)
	}

	return &DivisionRepository{
		items:  items,
		orders: orders,
	}
}

func (r *DivisionRepository) List(_ context.Context) ([]division.Division, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]division.Division, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *DivisionRepository) GetByID(_ context.Context, divisionID string) (division.Division, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[divisionID]
	if !ok {
		return division.Division{}, false, nil
	}

	return d, true, nil
}
