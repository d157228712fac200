package catalog

import (
	"github.com/mmcdole/airdate/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Default placeholder credentials accepted by the admin gate.
const (
	DefaultUsername = "admin"
	DefaultPassword = "admin"
)

// StaticVerifier accepts exactly one fixed username/password pair.
// It is a placeholder trust model with no hashing and no session.
type StaticVerifier struct {
	Username string
	Password string
}

// DefaultVerifier returns the admin/admin placeholder verifier.
func DefaultVerifier() StaticVerifier {
	return StaticVerifier{Username: DefaultUsername, Password: DefaultPassword}
}

func (v StaticVerifier) Verify(creds domain.Credentials) bool {
	return creds.Username == v.Username && creds.Password == v.Password
}

// BcryptVerifier checks the password against a bcrypt hash.
type BcryptVerifier struct {
	Username string
	Hash     []byte
}

// NewBcryptVerifier creates a verifier for a stored bcrypt hash.
func NewBcryptVerifier(username, hash string) BcryptVerifier {
	return BcryptVerifier{Username: username, Hash: []byte(hash)}
}

func (v BcryptVerifier) Verify(creds domain.Credentials) bool {
	if creds.Username != v.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.Hash, []byte(creds.Password)) == nil
}
