package player

import (
	"context"
	"errors"
)

// ErrUnknownTeam is returned by Create and Update when TeamID names no team.
var ErrUnknownTeam = errors.New("player team does not exist")

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByTeams(ctx context.Context, teamIDs []string) ([]Player, error)
	ListByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) (Player, bool, error)
	Delete(ctx context.Context, playerID string) (bool, error)
}
