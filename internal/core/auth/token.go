package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// Claims is the session-token claim set: subject (user id), role snapshot
// at issuance, issued-at, and expiry.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256-signed JWTs. The secret and TTL
// are injected at construction so tests can substitute both without
// touching process-wide state.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration

	// now is swappable in tests to exercise expiry.
	now func() time.Time
}

const defaultTTL = 24 * time.Hour

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given subject carrying the role claim.
// The role is a snapshot: it stays authoritative for the token's whole
// lifetime even if the stored role changes afterwards.
func (c *TokenCodec) Issue(subject string, role domain.Role) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token string: structure, HS256 signature,
// and expiry relative to now. No leeway window is applied. Every failure
// collapses into domain.ErrInvalidToken — a rejected token yields no
// partial-trust output.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	if _, err := domain.ParseRole(claims.Role); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Context converts verified claims into the per-request AuthContext
// handed to downstream handlers.
func (cl *Claims) Context() (domain.AuthContext, error) {
	role, err := domain.ParseRole(cl.Role)
	if err != nil {
		return domain.AuthContext{}, errors.Join(domain.ErrInvalidToken, err)
	}
	return domain.AuthContext{UserID: cl.Subject, Role: role}, nil
}
