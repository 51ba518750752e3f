// Package service defines interfaces for core, stateless domain logic and for
// the external collaborators the use cases talk to.
package service

// CodeHasher defines the interface for one-time code hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type CodeHasher interface {
	// Hash generates a salted hash from a plaintext code.
	Hash(code string) (string, error)

	// Check compares a plaintext code with a hash to see if they match.
	Check(code, hash string) bool
}
