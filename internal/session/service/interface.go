package service

// TokenService generates and digests plaintext session tokens.
type TokenService interface {
	// GenerateToken returns a new random plaintext token and its digest.
	GenerateToken() (plainToken string, tokenHash string, error error)

	// HashToken returns the digest used to store and look up a plaintext token.
	HashToken(plainToken string) string
}
