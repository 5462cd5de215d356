// Package auth provides the password hashing and token issuance effects
// consumed as black boxes by workflow steps. Workflows depend on the two
// small interfaces; the bcrypt and JWT implementations live here so tests
// and the example binary run against real credentials.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare reports whether plain matches hash. A mismatch is a normal
	// outcome, not an error; the error return is for infrastructure
	// failures only.
	Compare(hash, plain string) (bool, error)
}

// TokenIssuer mints an opaque session token for an authenticated user.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// Config carries the token signing material.
type Config struct {
	TokenSecret []byte
	TokenTTL    time.Duration
}

// BcryptHasher is the production PasswordHasher.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

// JWTIssuer signs HS256 tokens with sub/email/iat/exp claims.
type JWTIssuer struct {
	cfg Config
}

func NewJWTIssuer(cfg Config) *JWTIssuer {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &JWTIssuer{cfg: cfg}
}

func (i *JWTIssuer) Issue(userID int64, email string) (string, error) {
	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.cfg.TokenTTL).Unix(),
	})

	return token.SignedString(i.cfg.TokenSecret)
}
