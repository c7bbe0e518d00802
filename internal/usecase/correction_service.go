package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/correction"
	"github.com/riskibarqy/league-dashboard/internal/platform/id"
)

const (
	correctionListLimit     = 200
	minCorrectionMessageLen = 10
)

var correctionEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CorrectionInput struct {
	DivisionID   string
	DivisionName string
	TeamID       string
	TeamName     string
	Category     string
	ContactName  string
	ContactEmail string
	ContactRole  string
	Message      string
}

// CorrectionUpdate is an admin patch. SetNotes distinguishes an explicit
// null (clear) from an omitted field.
type CorrectionUpdate struct {
	Status   string
	SetNotes bool
	Notes    *string
}

type CorrectionService struct {
	correctionRepo correction.Repository
	ids            id.Generator
	now            func() time.Time
}

func NewCorrectionService(correctionRepo correction.Repository, ids id.Generator) *CorrectionService {
	return &CorrectionService{
		correctionRepo: correctionRepo,
		ids:            ids,
		now:            time.Now,
	}
}

func (s *CorrectionService) Submit(ctx context.Context, input CorrectionInput) (correction.Correction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CorrectionService.Submit")
	defer span.End()

	item := correction.Correction{
		DivisionID:   strings.TrimSpace(input.DivisionID),
		DivisionName: strings.TrimSpace(input.DivisionName),
		TeamID:       strings.TrimSpace(input.TeamID),
		TeamName:     strings.TrimSpace(input.TeamName),
		Category:     correction.Category(strings.TrimSpace(input.Category)),
		ContactName:  strings.TrimSpace(input.ContactName),
		ContactEmail: strings.TrimSpace(input.ContactEmail),
		ContactRole:  strings.TrimSpace(input.ContactRole),
		Message:      strings.TrimSpace(input.Message),
		Status:       correction.StatusPending,
	}

	switch {
	case item.ContactName == "":
		return correction.Correction{}, invalidInput("Your name is required.")
	case !correctionEmailPattern.MatchString(item.ContactEmail):
		return correction.Correction{}, invalidInput("Enter a valid email address.")
	case len([]rune(item.Message)) < minCorrectionMessageLen:
		return correction.Correction{}, invalidInput("Please include a few details so we can verify the update.")
	case !item.Category.Valid():
		return correction.Correction{}, invalidInput("Invalid submission category.")
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return correction.Correction{}, fmt.Errorf("generate correction id: %w", err)
	}
	item.ID = newID
	item.CreatedAt = s.now().UTC()

	created, err := s.correctionRepo.Create(ctx, item)
	if err != nil {
		return correction.Correction{}, fmt.Errorf("create correction: %w", err)
	}
	return created, nil
}

// List returns the newest submissions first.
func (s *CorrectionService) List(ctx context.Context) ([]correction.Correction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CorrectionService.List")
	defer span.End()

	items, err := s.correctionRepo.List(ctx, correctionListLimit)
	if err != nil {
		return nil, fmt.Errorf("list corrections: %w", err)
	}
	return items, nil
}

func (s *CorrectionService) Update(ctx context.Context, correctionID string, input CorrectionUpdate) (correction.Correction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CorrectionService.Update")
	defer span.End()

	if strings.TrimSpace(correctionID) == "" {
		return correction.Correction{}, invalidInput("Correction id is required.")
	}

	var patch correction.Patch
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status := correction.Status(raw)
		if !status.Valid() {
			return correction.Correction{}, invalidInput("Invalid status value.")
		}
		patch.Status = &status
	}
	if input.SetNotes {
		patch.SetNotes = true
		if input.Notes != nil {
			trimmed := strings.TrimSpace(*input.Notes)
			patch.Notes = &trimmed
		}
	}
	if patch.Empty() {
		return correction.Correction{}, invalidInput("Provide a status or note to update.")
	}

	updated, exists, err := s.correctionRepo.Update(ctx, correctionID, patch)
	if err != nil {
		return correction.Correction{}, fmt.Errorf("update correction: %w", err)
	}
	if !exists {
		return correction.Correction{}, notFound("correction", correctionID)
	}
	return updated, nil
}
