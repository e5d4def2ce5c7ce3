package service

// PasswordHasher turns account passwords into stored hashes and checks login
// attempts against them.
type PasswordHasher interface {
	// Hash returns a salted hash. Passwords the algorithm cannot take in full
	// are rejected rather than truncated.
	Hash(password string) (string, error)

	Check(password, hash string) bool
}
