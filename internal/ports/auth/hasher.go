package auth

// PasswordHasher turns plaintext passwords into storable digests and checks
// candidates against them. Implementations live under internal/adapters/auth.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
