package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher compares plaintext passwords against bcrypt hashes.
type PasswordHasher struct{}

// NewPasswordHasher returns a bcrypt-backed hasher.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash produces a bcrypt hash of the password at the default cost.
func (PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether the password matches the stored hash.
func (PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
