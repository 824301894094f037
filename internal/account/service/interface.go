package service

import "context"

// PasswordService hashes and verifies account passwords.
//
// Verification is constant-time for a well-formed hash: a mismatch returns
// (false, nil), never an error. An error is only returned for infrastructure
// faults (unparseable hash, internal hasher failure).
type PasswordService interface {
	// HashPassword returns an argon2id digest of the plaintext. Each call
	// produces a different digest for the same plaintext (per-call salt).
	HashPassword(ctx context.Context, plaintext string) (string, error)

	// VerifyPassword reports whether the plaintext matches the stored digest.
	VerifyPassword(ctx context.Context, plaintext, hashedPassword string) (bool, error)

	// VerifyDummy runs a full verification against a throwaway digest.
	// Used to keep login latency flat when the email doesn't resolve to an
	// account, so response timing doesn't disclose account existence.
	VerifyDummy(ctx context.Context, plaintext string)
}
