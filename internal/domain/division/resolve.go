package division

import "errors"

var ErrNoDivisions = errors.New("no divisions available")

// Resolution is the outcome of picking the division a visitor should see.
type Resolution struct {
	Division       Division
	ShouldRedirect bool
}

// Resolve picks the requested division when it exists. Unknown ids fall back
// to fallbackID (or the first division) and ask the caller to redirect.
func Resolve(divisions []Division, requestedID, fallbackID string) (Resolution, error) {
	if len(divisions) == 0 {
		return Resolution{}, ErrNoDivisions
	}

	fallback := divisions[0]
	for _, item := range divisions {
		if item.ID == fallbackID {
			fallback = item
			break
		}
	}

	if requestedID == "" {
		return Resolution{Division: fallback}, nil
	}

	for _, item := range divisions {
		if item.ID == requestedID {
			return Resolution{Division: item}, nil
		}
	}

	return Resolution{Division: fallback, ShouldRedirect: true}, nil
}
