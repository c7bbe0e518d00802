package division

import "fmt"

// Division is one age-group or tier table inside a league.
type Division struct {
	ID        string
	LeagueID  string
	Name      string
	ShortName string
	AgeGroup  string
}

func (d Division) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("division id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("division name is required")
	}

	return nil
}

// Label returns the short name, falling back to the full name.
func (d Division) Label() string {
	if d.ShortName != "" {
		return d.ShortName
	}
	return d.Name
}
