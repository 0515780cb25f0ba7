// Package security holds the password digest schemes accepted by the login gate.
package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Digester turns passwords into stored digests and checks them back.
type Digester interface {
	Digest(password string) (string, error)
	Verify(digest, password string) bool
}

// SHA256Hex is the legacy digest used by the bootstrap account: the lowercase hex
// SHA-256 of the password.
func SHA256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// BcryptDigester writes bcrypt digests and verifies both bcrypt and legacy
// SHA-256 hex digests, so seeded accounts keep working.
type BcryptDigester struct {
	Cost int
}

var _ Digester = BcryptDigester{}

func NewBcryptDigester() BcryptDigester {
	return BcryptDigester{Cost: bcrypt.DefaultCost}
}

func (d BcryptDigester) Digest(password string) (string, error) {
	cost := d.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (d BcryptDigester) Verify(digest, password string) bool {
	if isBcrypt(digest) {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}
	want := SHA256Hex(password)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(digest)), []byte(want)) == 1
}

func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}
