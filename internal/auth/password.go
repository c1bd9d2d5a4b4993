package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the service has always used for stored
// credentials; raising it only affects newly hashed passwords.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext. The salt is
// randomized per call, so hashing the same plaintext twice yields different
// outputs; equality of hashes is never meaningful.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// Callers must map a false result to the same generic rejection as an
// unknown user, so the response never reveals which one failed.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
