// Package auth issues and verifies the signed session tokens (HS256 JWTs)
// that carry an account's identity, tenant and role.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the session claim set. TenantID is empty for global roles.
type Claims struct {
	jwt.RegisteredClaims
	TenantID string      `json:"tid"`
	Role     models.Role `json:"rol"`
}

type Token struct {
	Value     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Issuer struct {
	keys *Keyring
	ttl  time.Duration
	now  func() time.Time
}

func NewIssuer(keys *Keyring, ttl time.Duration) *Issuer {
	return &Issuer{keys: keys, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for both issuing and verifying.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

func (i *Issuer) Issue(accountID, tenantID string, role models.Role) (*Token, error) {
	key := i.keys.Active()
	issued := i.now().Truncate(time.Second)
	expires := ceilSecond(issued.Add(i.ttl))
	jti := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		TenantID: tenantID,
		Role:     role,
	})
	token.Header["kid"] = key.ID

	signed, err := token.SignedString(key.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Token{Value: signed, ID: jti, IssuedAt: issued, ExpiresAt: expires}, nil
}

// ceilSecond rounds t up to the exp claim's one-second resolution, so the
// reported expiry matches the signed one and never falls short of the ttl.
func ceilSecond(t time.Time) time.Time {
	if s := t.Truncate(time.Second); !s.Equal(t) {
		return s.Add(time.Second)
	}
	return t
}

var errUnknownKey = errors.New("unknown signing key")

// Verify checks the signature, then expiry, then the shape of the claims,
// and reports the first failure as common.ErrBadSignature,
// common.ErrTokenExpired or common.ErrTokenMalformed.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	now := i.now()
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			kid, _ := t.Header["kid"].(string)
			secret, ok := i.keys.Lookup(kid, now)
			if !ok {
				return nil, errUnknownKey
			}
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, classify(err)
	}

	if err := wellFormed(claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return common.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return common.ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	default:
		return common.ErrTokenMalformed
	}
}

func wellFormed(c *Claims) error {
	if _, err := uuid.Parse(c.Subject); err != nil {
		return common.ErrTokenMalformed
	}
	if c.ID == "" || c.IssuedAt == nil || !c.Role.Valid() {
		return common.ErrTokenMalformed
	}
	return nil
}

type claimsKey struct{}

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}
