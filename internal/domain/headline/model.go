package headline

import "time"

// Headline is a short news item pinned to a division, optionally about a match.
type Headline struct {
	ID         string
	MatchID    string
	DivisionID string
	Title      string
	Body       string
	CreatedAt  time.Time
}
