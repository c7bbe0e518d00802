package player

// Player is a registered squad member of a team.
type Player struct {
	ID       string
	TeamID   string
	Name     string
	Number   *int
	Position string
}
