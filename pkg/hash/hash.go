// Package hash implements password hashing and verification.
package hash

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used for every stored credential.
const bcryptCost = 12

// Password hashes a plaintext password with a per-hash random salt.
func Password(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. It never
// returns an error: a malformed digest simply fails verification.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
