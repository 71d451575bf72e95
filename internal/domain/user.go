package domain

// User is one account record from the flat users file. Password holds the
// bcrypt hash, never the clear text.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
