package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
	"github.com/riskibarqy/league-dashboard/internal/platform/id"
)

const (
	DefaultHeadlineLimit = 3
	maxHeadlineLimit     = 50
)

type HeadlineInput struct {
	DivisionID string
	MatchID    string
	Title      string
	Body       string
}

type HeadlineService struct {
	headlineRepo headline.Repository
	ids          id.Generator
	now          func() time.Time
}

func NewHeadlineService(headlineRepo headline.Repository, ids id.Generator) *HeadlineService {
	return &HeadlineService{
		headlineRepo: headlineRepo,
		ids:          ids,
		now:          time.Now,
	}
}

// ListByDivision returns the newest headlines first.
func (s *HeadlineService) ListByDivision(ctx context.Context, divisionID string, limit int) ([]headline.Headline, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadlineService.ListByDivision", divisionAttr(divisionID))
	defer span.End()

	if limit <= 0 {
		limit = DefaultHeadlineLimit
	}
	if limit > maxHeadlineLimit {
		limit = maxHeadlineLimit
	}

	items, err := s.headlineRepo.ListByDivision(ctx, divisionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list headlines: %w", err)
	}
	return items, nil
}

func (s *HeadlineService) Create(ctx context.Context, input HeadlineInput) (headline.Headline, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadlineService.Create")
	defer span.End()

	item, err := normalizeHeadline(input)
	if err != nil {
		return headline.Headline{}, err
	}
	newID, err := s.ids.NewID()
	if err != nil {
		return headline.Headline{}, fmt.Errorf("generate headline id: %w", err)
	}
	item.ID = newID
	item.CreatedAt = s.now().UTC()

	created, err := s.headlineRepo.Create(ctx, item)
	if err != nil {
		return headline.Headline{}, fmt.Errorf("create headline: %w", err)
	}
	return created, nil
}

func (s *HeadlineService) Update(ctx context.Context, headlineID string, input HeadlineInput) (headline.Headline, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadlineService.Update")
	defer span.End()

	item, err := normalizeHeadline(input)
	if err != nil {
		return headline.Headline{}, err
	}
	item.ID = headlineID

	updated, exists, err := s.headlineRepo.Update(ctx, item)
	if err != nil {
		return headline.Headline{}, fmt.Errorf("update headline: %w", err)
	}
	if !exists {
		return headline.Headline{}, notFound("headline", headlineID)
	}
	return updated, nil
}

func (s *HeadlineService) Delete(ctx context.Context, headlineID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadlineService.Delete")
	defer span.End()

	deleted, err := s.headlineRepo.Delete(ctx, headlineID)
	if err != nil {
		return fmt.Errorf("delete headline: %w", err)
	}
	if !deleted {
		return notFound("headline", headlineID)
	}
	return nil
}

func normalizeHeadline(input HeadlineInput) (headline.Headline, error) {
	item := headline.Headline{
		DivisionID: strings.TrimSpace(input.DivisionID),
		MatchID:    strings.TrimSpace(input.MatchID),
		Title:      strings.TrimSpace(input.Title),
		Body:       strings.TrimSpace(input.Body),
	}
	if item.DivisionID == "" {
		return headline.Headline{}, invalidInput("Division is required.")
	}
	if item.Title == "" {
		return headline.Headline{}, invalidInput("Headline title is required.")
	}
	return item, nil
}
