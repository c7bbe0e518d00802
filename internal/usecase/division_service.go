package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/league-dashboard/internal/domain/division"
)

type DivisionService struct {
	divisionRepo      division.Repository
	defaultDivisionID string
}

// NewDivisionService takes the id of the division shown when a visitor has
// not picked one. An empty or unknown id falls back to the first division.
func NewDivisionService(divisionRepo division.Repository, defaultDivisionID string) *DivisionService {
	return &DivisionService{
		divisionRepo:      divisionRepo,
		defaultDivisionID: defaultDivisionID,
	}
}

func (s *DivisionService) List(ctx context.Context) ([]division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.List")
	defer span.End()

	items, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	return items, nil
}

func (s *DivisionService) Get(ctx context.Context, divisionID string) (division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.Get", divisionAttr(divisionID))
	defer span.End()

	item, exists, err := s.divisionRepo.GetByID(ctx, divisionID)
	if err != nil {
		return division.Division{}, fmt.Errorf("get division: %w", err)
	}
	if !exists {
		return division.Division{}, notFound("division", divisionID)
	}
	return item, nil
}

// ResolveActive picks the division for a request. ShouldRedirect is set when
// requestedID was given but is unknown.
func (s *DivisionService) ResolveActive(ctx context.Context, requestedID string) (division.Resolution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.ResolveActive")
	defer span.End()

	items, err := s.divisionRepo.List(ctx)
	if err != nil {
		return division.Resolution{}, fmt.Errorf("list divisions: %w", err)
	}

	resolution, err := division.Resolve(items, requestedID, s.defaultDivisionID)
	if errors.Is(err, division.ErrNoDivisions) {
		return division.Resolution{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if err != nil {
		return division.Resolution{}, err
	}
	return resolution, nil
}
