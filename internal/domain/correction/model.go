package correction

import "time"

type Category string

const (
	CategoryScoreUpdate Category = "score_update"
	CategoryGoalUpdate  Category = "goal_update"
	CategoryGeneral     Category = "general"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryScoreUpdate, CategoryGoalUpdate, CategoryGeneral:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusInReview Status = "in_review"
	StatusResolved Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusResolved:
		return true
	default:
		return false
	}
}

// Correction is a crowd-sourced report that a published result is wrong.
type Correction struct {
	ID           string
	DivisionID   string
	DivisionName string
	TeamID       string
	TeamName     string
	Category     Category
	ContactName  string
	ContactEmail string
	ContactRole  string
	Message      string
	Status       Status
	Notes        *string
	CreatedAt    time.Time
}

// Patch is a partial admin update. Notes is applied only when SetNotes is
// true, and a nil Notes then clears the stored value.
type Patch struct {
	Status   *Status
	SetNotes bool
	Notes    *string
}

func (p Patch) Empty() bool {
	return p.Status == nil && !p.SetNotes
}
