package ports

import "github.com/ladob/catalog-api/internal/core/domain"

// TokenService issues and validates self-contained bearer tokens.
type TokenService interface {
	// Issue signs a token whose subject is the user's email.
	Issue(user *domain.User) (string, error)
	// SubjectOf extracts the subject claim without verifying expiry.
	// Returns "" when the token is structurally malformed or the
	// signature does not verify.
	SubjectOf(token string) string
	// IsValid reports whether the signature verifies, the token has not
	// expired, and the subject matches the user's email.
	IsValid(token string, user *domain.User) bool
}
