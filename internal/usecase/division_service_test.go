package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	divisionmock "github.com/riskibarqy/league-dashboard/internal/mocks/domain/division"
	"github.com/stretchr/testify/mock"
)

func TestDivisionService_GetNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	repo := divisionmock.NewRepository(t)
	repo.On("GetByID", mock.Anything, "u99").Return(division.Division{}, false, nil).Once()

	_, err := NewDivisionService(repo, "").Get(context.Background(), "u99")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDivisionService_ResolveActive(t *testing.T) {
	t.Parallel()

	repo := &stubDivisionRepository{items: []division.Division{
		{ID: "u10", Name: "Under 10"},
		{ID: "u12", Name: "Under 12"},
	}}
	service := NewDivisionService(repo, "u12")

	got, err := service.ResolveActive(context.Background(), "")
	if err != nil {
		t.Fatalf("ResolveActive error: %v", err)
	}
	if got.Division.ID != "u12" || got.ShouldRedirect {
		t.Fatalf("expected configured default, got %+v", got)
	}

	got, err = service.ResolveActive(context.Background(), "u99")
	if err != nil {
		t.Fatalf("ResolveActive error: %v", err)
	}
	if !got.ShouldRedirect {
		t.Fatalf("expected redirect for unknown division, got %+v", got)
	}
}

func TestDivisionService_ResolveActiveWithoutDivisions(t *testing.T) {
	t.Parallel()

	service := NewDivisionService(&stubDivisionRepository{}, "")
	if _, err := service.ResolveActive(context.Background(), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
