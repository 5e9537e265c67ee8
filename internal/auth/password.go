package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// Bcrypt is a PasswordHasher backed by bcrypt.
type Bcrypt struct {
	Cost int
}

// NewBcrypt returns a hasher using bcrypt.DefaultCost.
func NewBcrypt() Bcrypt {
	return Bcrypt{Cost: bcrypt.DefaultCost}
}

// Hash computes a salted bcrypt digest of password.
func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Malformed hashes never match.
func (b Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
