package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	"github.com/riskibarqy/league-dashboard/internal/platform/id"
)

type PlayerInput struct {
	TeamID   string
	Name     string
	Number   *int
	Position string
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	ids        id.Generator
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, ids id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		ids:        ids,
	}
}

// ListByDivision returns every player on the division's teams, by name.
func (s *PlayerService) ListByDivision(ctx context.Context, divisionID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByDivision", divisionAttr(divisionID))
	defer span.End()

	teams, err := s.teamRepo.ListByDivision(ctx, divisionID)
	if err != nil {
		return nil, fmt.Errorf("list teams by division: %w", err)
	}
	players, err := s.playerRepo.ListByTeams(ctx, teamIDs(teams))
	if err != nil {
		return nil, fmt.Errorf("list players by teams: %w", err)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	return players, nil
}

func (s *PlayerService) Create(ctx context.Context, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	item, err := normalizePlayerInput(input)
	if err != nil {
		return player.Player{}, err
	}
	if item.ID, err = s.ids.NewID(); err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if errors.Is(err, player.ErrUnknownTeam) {
		return player.Player{}, invalidInput("Team does not exist.")
	}
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	item, err := normalizePlayerInput(input)
	if err != nil {
		return player.Player{}, err
	}
	item.ID = playerID

	updated, exists, err := s.playerRepo.Update(ctx, item)
	if errors.Is(err, player.ErrUnknownTeam) {
		return player.Player{}, invalidInput("Team does not exist.")
	}
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !exists {
		return player.Player{}, notFound("player", playerID)
	}
	return updated, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	deleted, err := s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return notFound("player", playerID)
	}
	return nil
}

func normalizePlayerInput(input PlayerInput) (player.Player, error) {
	item := player.Player{
		TeamID:   strings.TrimSpace(input.TeamID),
		Name:     strings.TrimSpace(input.Name),
		Number:   input.Number,
		Position: strings.TrimSpace(input.Position),
	}
	if item.TeamID == "" {
		return player.Player{}, invalidInput("Team is required.")
	}
	if item.Name == "" {
		return player.Player{}, invalidInput("Player name is required.")
	}
	return item, nil
}
