package hash

// Hash is the contract for hashing and verifying secrets.
type Hash interface {
	// Hash hashes plaintext and returns the encoded digest.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored hash.
	Verify(hashed, plaintext string) bool
}
