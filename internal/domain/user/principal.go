package user

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	UserID  string
	Email   string
	Name    string
	IsAdmin bool
}
