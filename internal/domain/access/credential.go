package access

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"portfolio-api/internal/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	tokenIssuer  = "portfolio-api"
	keyInfo      = "portfolio-api admin token v1"
	legacyFields = 3
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies admin bearer credentials. Credentials are HS256
// JWTs whose key is derived from the admin secret, so rotating the secret
// revokes every credential without any session table.
type Issuer struct {
	secret       string
	key          []byte
	ttl          time.Duration
	acceptLegacy bool

	now func() time.Time
}

// NewIssuer derives the signing key from secret, salted with salt (may be
// empty). acceptLegacy additionally admits base64("admin:<ms>:<secret>")
// credentials from older clients.
func NewIssuer(secret, salt string, ttl time.Duration, acceptLegacy bool) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("access: admin secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("access: token ttl must be positive")
	}

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), []byte(salt), []byte(keyInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("access: deriving signing key: %w", err)
	}

	return &Issuer{
		secret:       secret,
		key:          key,
		ttl:          ttl,
		acceptLegacy: acceptLegacy,
		now:          time.Now,
	}, nil
}

// Login checks password against the admin secret and mints a credential.
func (i *Issuer) Login(password string) (string, error) {
	if password == "" {
		return "", apperror.ValidationFailed("password", "Password required")
	}
	if !i.secretMatches(password) {
		return "", apperror.Unauthorized("Invalid password")
	}
	return i.mint()
}

func (i *Issuer) mint() (string, error) {
	now := i.now()
	c := claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   RoleAdmin,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("access: signing token: %w", err)
	}
	return signed, nil
}

// Verify reports whether token currently grants admin capability. Malformed
// input is simply not authorized.
func (i *Issuer) Verify(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	if i.verifyJWT(token) == nil {
		return true
	}
	return i.acceptLegacy && i.verifyLegacy(token)
}

// State reports the admin status implied by holding token.
func (i *Issuer) State(token string) State {
	if i.Verify(token) {
		return LoggedIn
	}
	return LoggedOut
}

// Malformed reports whether token decodes as neither a JWT nor a legacy
// base64 credential.
func (i *Issuer) Malformed(token string) bool {
	token = strings.TrimSpace(token)
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims{}); err == nil {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(token)
	return err != nil
}

func (i *Issuer) verifyJWT(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return i.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return err
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Role != RoleAdmin {
		return errors.New("access: token is not an admin credential")
	}
	return nil
}

func (i *Issuer) verifyLegacy(token string) bool {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != legacyFields || parts[0] != RoleAdmin {
		return false
	}
	return i.secretMatches(parts[2])
}

func (i *Issuer) secretMatches(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(i.secret)) == 1
}
