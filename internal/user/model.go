package user

import "time"

// Gender values offered by the registration form. The store keeps the column
// as free text; the form is the only thing constraining it.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Gender       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser is the insert payload. The store assigns the ID.
type NewUser struct {
	FirstName    string
	LastName     string
	Gender       string
	Email        string
	PasswordHash string
}
