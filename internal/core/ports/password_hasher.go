package ports

// PasswordHasher produces and checks one-way password hashes.
type PasswordHasher interface {
	// Hash returns a salted, slow one-way hash of the plaintext.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. The
	// comparison is constant-time.
	Verify(plaintext, hash string) bool
}
