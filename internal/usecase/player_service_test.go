package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	playermock "github.com/riskibarqy/league-dashboard/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/league-dashboard/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_ListByDivisionSortsByName(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewPlayerService(playerRepo, teamRepo, &sequenceIDs{})

	teamRepo.
		On("ListByDivision", mock.Anything, "u12").
		Return([]team.Team{{ID: "lions"}, {ID: "tigers"}}, nil).
		Once()
	playerRepo.
		On("ListByTeams", mock.Anything, []string{"lions", "tigers"}).
		Return([]player.Player{{ID: "p2", Name: "Zed"}, {ID: "p1", Name: "Ana"}}, nil).
		Once()

	got, err := service.ListByDivision(context.Background(), "u12")
	if err != nil {
		t.Fatalf("ListByDivision error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Ana" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestPlayerService_CreateUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, teammock.NewRepository(t), &sequenceIDs{})

	_, err := service.Create(context.Background(), PlayerInput{Name: "Ana"})
	if !errors.Is(err, ErrInvalidInput) || !strings.HasSuffix(err.Error(), "Team is required.") {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = service.Create(context.Background(), PlayerInput{TeamID: "lions", Name: " "})
	if !errors.Is(err, ErrInvalidInput) || !strings.HasSuffix(err.Error(), "Player name is required.") {
		t.Fatalf("unexpected error: %v", err)
	}

	playerRepo.
		On("Create", mock.Anything, player.Player{ID: "id-1", TeamID: "lions", Name: "Ana Lima", Number: nil, Position: "FW"}).
		Return(player.Player{ID: "id-1", TeamID: "lions", Name: "Ana Lima", Position: "FW"}, nil).
		Once()

	created, err := service.Create(context.Background(), PlayerInput{TeamID: "lions", Name: " Ana Lima ", Position: "FW"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != "id-1" {
		t.Fatalf("unexpected player: %+v", created)
	}
}

func TestPlayerService_UnknownTeamIsInvalidInput(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, teammock.NewRepository(t), &sequenceIDs{})

	playerRepo.
		On("Create", mock.Anything, mock.AnythingOfType("player.Player")).
		Return(player.Player{}, fmt.Errorf("insert player: %w", player.ErrUnknownTeam)).
		Once()
	playerRepo.
		On("Update", mock.Anything, mock.AnythingOfType("player.Player")).
		Return(player.Player{}, false, fmt.Errorf("update player: %w", player.ErrUnknownTeam)).
		Once()

	_, err := service.Create(context.Background(), PlayerInput{TeamID: "ghost", Name: "Ana"})
	if !errors.Is(err, ErrInvalidInput) || !strings.HasSuffix(err.Error(), "Team does not exist.") {
		t.Fatalf("unexpected create error: %v", err)
	}
	_, err = service.Update(context.Background(), "p1", PlayerInput{TeamID: "ghost", Name: "Ana"})
	if !errors.Is(err, ErrInvalidInput) || !strings.HasSuffix(err.Error(), "Team does not exist.") {
		t.Fatalf("unexpected update error: %v", err)
	}
}

func TestPlayerService_DeleteNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, teammock.NewRepository(t), &sequenceIDs{})

	playerRepo.On("Delete", mock.Anything, "p404").Return(false, nil).Once()

	if err := service.Delete(context.Background(), "p404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
