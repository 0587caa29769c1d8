// Package service declares the ports the use cases depend on: hashing, tokens,
// photo storage and processing, QR rendering and event publishing.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash. Malformed hashes never match.
	Check(password, hash string) bool
}
