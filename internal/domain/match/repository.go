package match

import "context"

// Repository describes match and goal persistence needs from use cases.
// Goals are owned by their match, so writes always carry the full goal set.
type Repository interface {
	ListByDivision(ctx context.Context, divisionID string) ([]Match, error)
	ListRecentByDivision(ctx context.Context, divisionID string, limit int) ([]Match, error)
	ListByTeam(ctx context.Context, divisionID, teamID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListGoalsByMatches(ctx context.Context, matchIDs []string) ([]Goal, error)
	Create(ctx context.Context, item Match, goals []Goal) (Match, error)
	Update(ctx context.Context, item Match, goals []Goal) (Match, bool, error)
	Delete(ctx context.Context, matchID string) (bool, error)
}
