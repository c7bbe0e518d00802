package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByDivision(ctx context.Context, divisionID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
