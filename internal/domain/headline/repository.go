package headline

import "context"

type Repository interface {
	ListByDivision(ctx context.Context, divisionID string, limit int) ([]Headline, error)
	GetByID(ctx context.Context, headlineID string) (Headline, bool, error)
	Create(ctx context.Context, item Headline) (Headline, error)
	Update(ctx context.Context, item Headline) (Headline, bool, error)
	Delete(ctx context.Context, headlineID string) (bool, error)
}
