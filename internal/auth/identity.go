package auth

// Identity is the result of a successful credential check. It contains facts
// only, no decisions; session creation happens in the handler layer.
type Identity struct {
	UserID    string
	FirstName string // denormalized for display
	LastName  string
}
