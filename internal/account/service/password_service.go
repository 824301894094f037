// Package service provides account-related services for password hashing and
// verification. Implements argon2id hashing with a bounded concurrency model,
// since hashing is deliberately CPU and memory expensive.
package service

import (
	"context"
	"crypto/rand"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/sync/semaphore"

	apperrors "github.com/allisson/accounts/internal/errors"
)

// passwordService implements PasswordService using argon2id via go-pwdhash.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
	// sem bounds concurrent hashing work; nil means unbounded.
	sem *semaphore.Weighted
	// dummyHash is a digest of a random throwaway value, computed once at
	// startup and used by VerifyDummy.
	dummyHash string
}

// NewPasswordService creates a PasswordService using the argon2id interactive
// policy. maxConcurrency bounds the number of in-flight hash/verify operations;
// zero or negative disables the bound.
func NewPasswordService(maxConcurrency int) (PasswordService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	// The dummy digest must be real argon2id output so that VerifyDummy costs
	// the same as a genuine verification.
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to generate dummy password")
	}
	dummyHash, err := hasher.Hash(randomBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash dummy password")
	}

	var sem *semaphore.Weighted
	if maxConcurrency > 0 {
		sem = semaphore.NewWeighted(int64(maxConcurrency))
	}

	return &passwordService{
		hasher:    hasher,
		sem:       sem,
		dummyHash: dummyHash,
	}, nil
}

// HashPassword returns an argon2id digest of the plaintext.
func (s *passwordService) HashPassword(ctx context.Context, plaintext string) (string, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	hashedPassword, err := s.hasher.Hash([]byte(plaintext))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// VerifyPassword reports whether the plaintext matches the stored digest.
// go-pwdhash compares the decoded digests in constant time.
func (s *passwordService) VerifyPassword(
	ctx context.Context,
	plaintext, hashedPassword string,
) (bool, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer release()

	ok, err := s.hasher.Verify([]byte(plaintext), hashedPassword)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to verify password")
	}
	return ok, nil
}

// VerifyDummy runs a verification against the precomputed throwaway digest.
// The result is discarded; only the spent CPU time matters.
func (s *passwordService) VerifyDummy(ctx context.Context, plaintext string) {
	release, err := s.acquire(ctx)
	if err != nil {
		return
	}
	defer release()

	_, _ = s.hasher.Verify([]byte(plaintext), s.dummyHash)
}

// acquire reserves a hashing slot, returning the release function.
func (s *passwordService) acquire(ctx context.Context) (func(), error) {
	if s.sem == nil {
		return func() {}, nil
	}
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, apperrors.Wrap(err, "failed to acquire hashing slot")
	}
	return func() { s.sem.Release(1) }, nil
}
