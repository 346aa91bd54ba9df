package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the digest.
// bcrypt performs the comparison in constant time.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
