package correction

import "context"

type Repository interface {
	Create(ctx context.Context, item Correction) (Correction, error)
	List(ctx context.Context, limit int) ([]Correction, error)
	Update(ctx context.Context, correctionID string, patch Patch) (Correction, bool, error)
}
