// Package service declares interfaces for stateless domain logic whose
// implementation lives in the infrastructure layer.
package service

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored hashes. The concrete algorithm stays out of the domain layer.
type PasswordHasher interface {
	// Hash produces a salted hash of the given plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
