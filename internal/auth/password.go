package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored hashes. Abstracting it keeps the service testable without fixing
// the algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls on
	// the same input yield different outputs; the salt is embedded in the
	// result.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. It reports false for
	// any mismatch, including malformed hash strings, and never errors.
	Check(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt at the default cost.
type BcryptHasher struct{}

func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

func (BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
