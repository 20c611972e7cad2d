package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User models a registered account in the catalog.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
}
