package team

import "fmt"

// Team is a club entered in one division.
type Team struct {
	ID         string
	DivisionID string
	Name       string
	ShortName  string
	BadgeURL   string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.DivisionID == "" {
		return fmt.Errorf("team division id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Label is the short display label used in tables.
func (t Team) Label() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}
