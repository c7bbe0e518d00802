package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
	headlinemock "github.com/riskibarqy/league-dashboard/internal/mocks/domain/headline"
	"github.com/stretchr/testify/mock"
)

func TestHeadlineService_ListByDivisionClampsLimit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: DefaultHeadlineLimit},
		{name: "passthrough", limit: 7, want: 7},
		{name: "max", limit: 500, want: maxHeadlineLimit},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := headlinemock.NewRepository(t)
			repo.On("ListByDivision", mock.Anything, "u12", tc.want).Return([]headline.Headline{}, nil).Once()

			if _, err := NewHeadlineService(repo, &sequenceIDs{}).ListByDivision(context.Background(), "u12", tc.limit); err != nil {
				t.Fatalf("ListByDivision error: %v", err)
			}
		})
	}
}

func TestHeadlineService_CreateUsingMockery(t *testing.T) {
	t.Parallel()

	repo := headlinemock.NewRepository(t)
	service := NewHeadlineService(repo, &sequenceIDs{})

	_, err := service.Create(context.Background(), HeadlineInput{DivisionID: "u12", Title: "   "})
	if !errors.Is(err, ErrInvalidInput) || !strings.HasSuffix(err.Error(), "Headline title is required.") {
		t.Fatalf("unexpected validation error: %v", err)
	}
	_, err = service.Create(context.Background(), HeadlineInput{Title: "Derby day"})
	if !errors.Is(err, ErrInvalidInput) || !strings.HasSuffix(err.Error(), "Division is required.") {
		t.Fatalf("unexpected validation error: %v", err)
	}

	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(item headline.Headline) bool {
			return item.ID == "id-1" && item.Title == "Derby day" && !item.CreatedAt.IsZero()
		})).
		Return(func(_ context.Context, item headline.Headline) (headline.Headline, error) {
			return item, nil
		}).
		Once()

	created, err := service.Create(context.Background(), HeadlineInput{DivisionID: "u12", Title: " Derby day ", MatchID: "m1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.MatchID != "m1" {
		t.Fatalf("unexpected headline: %+v", created)
	}
}

func TestHeadlineService_UpdateAndDeleteNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	repo := headlinemock.NewRepository(t)
	service := NewHeadlineService(repo, &sequenceIDs{})

	repo.On("Update", mock.Anything, mock.Anything).Return(headline.Headline{}, false, nil).Once()
	repo.On("Delete", mock.Anything, "h404").Return(false, nil).Once()

	if _, err := service.Update(context.Background(), "h404", HeadlineInput{DivisionID: "u12", Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := service.Delete(context.Background(), "h404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
