// Package service declares the domain's outbound ports: hashing, tokens and
// the location path cache.
package service

// PasswordHasher turns plaintext passwords into stored hashes. Plaintext never
// leaves the usecase layer.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password produced hash.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with weaker parameters
	// than the hasher currently uses.
	NeedsRehash(hash string) bool
}
