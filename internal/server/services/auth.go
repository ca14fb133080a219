// Package services contains the server-side business logic shared by the
// gRPC and HTTP transports. Every tenant-scoped operation passes through
// access.Guard here and nowhere else.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/logging"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/credentials"
	"github.com/dmitrijs2005/unigate/internal/server/metrics"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/denylist"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/repomanager"
)

type LoginResult struct {
	Token *auth.Token
	Scope access.Scope
}

// AuthService handles login, logout and per-request token authentication.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *credentials.Hasher
	issuer      *auth.Issuer
	denylist    denylist.Denylist
	metrics     *metrics.Metrics
	log         logging.Logger

	// verified against when the username is unknown, so both paths cost the same
	dummyVerifier string
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher *credentials.Hasher, issuer *auth.Issuer,
	dl denylist.Denylist, mx *metrics.Metrics, log logging.Logger) (*AuthService, error) {

	pw, err := credentials.NewPassword()
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(pw)
	dummy, err := hasher.Hash(pw)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		db:            db,
		repomanager:   m,
		hasher:        hasher,
		issuer:        issuer,
		denylist:      dl,
		metrics:       mx,
		log:           log.With("module", "auth"),
		dummyVerifier: dummy,
	}, nil
}

// Login checks the password and issues a session token. Every failure that
// depends on the submitted credentials is reported as
// common.ErrAuthenticationFailed.
func (s *AuthService) Login(ctx context.Context, tenantID, username string, password []byte) (*LoginResult, error) {
	tenantID = strings.ToUpper(strings.TrimSpace(tenantID))
	username = strings.TrimSpace(username)

	repo := s.repomanager.Accounts(s.db)
	acct, err := repo.FindForLogin(ctx, tenantID, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(password, s.dummyVerifier)
			s.metrics.Logins.WithLabelValues("failure").Inc()
			return nil, common.ErrAuthenticationFailed
		}
		s.log.Error(ctx, "login lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	ok, err := s.hasher.Verify(password, acct.Verifier)
	if err != nil {
		s.log.Error(ctx, "stored verifier is corrupt", "account_id", acct.ID, "error", err)
		s.metrics.Logins.WithLabelValues("failure").Inc()
		return nil, common.ErrAuthenticationFailed
	}
	if !ok {
		s.metrics.Logins.WithLabelValues("failure").Inc()
		return nil, common.ErrAuthenticationFailed
	}

	if s.hasher.NeedsRehash(acct.Verifier) {
		s.rehash(ctx, acct.ID, password)
	}

	scope, err := access.NewScope(acct.ID, acct.TenantID, acct.Role)
	if err != nil {
		s.log.Error(ctx, "account has an inconsistent tenant binding", "account_id", acct.ID)
		return nil, common.ErrorInternal
	}

	token, err := s.issuer.Issue(acct.ID, acct.TenantID, acct.Role)
	if err != nil {
		s.log.Error(ctx, "token issue failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.metrics.Logins.WithLabelValues("success").Inc()
	s.log.Info(ctx, "login", "account_id", acct.ID, "tenant", acct.TenantID, "role", acct.Role)
	return &LoginResult{Token: token, Scope: scope}, nil
}

func (s *AuthService) rehash(ctx context.Context, accountID string, password []byte) {
	v, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Warn(ctx, "verifier upgrade failed", "account_id", accountID, "error", err)
		return
	}
	if err := s.repomanager.Accounts(s.db).UpdateVerifier(ctx, accountID, v); err != nil {
		s.log.Warn(ctx, "verifier upgrade failed", "account_id", accountID, "error", err)
		return
	}
	s.log.Info(ctx, "verifier upgraded", "account_id", accountID)
}

// Authenticate turns a bearer token into verified claims and a scope.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, access.Scope, error) {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		s.metrics.TokenVerifications.WithLabelValues(TokenErrorKind(err)).Inc()
		return nil, access.Scope{}, err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.log.Error(ctx, "denylist lookup failed", "error", err)
		return nil, access.Scope{}, common.ErrorInternal
	}
	if revoked {
		s.metrics.TokenVerifications.WithLabelValues(TokenErrorKind(common.ErrTokenRevoked)).Inc()
		return nil, access.Scope{}, common.ErrTokenRevoked
	}

	scope, err := access.Resolve(claims)
	if err != nil {
		s.metrics.TokenVerifications.WithLabelValues(TokenErrorKind(err)).Inc()
		return nil, access.Scope{}, err
	}

	s.metrics.TokenVerifications.WithLabelValues("ok").Inc()
	return claims, scope, nil
}

// Logout revokes the token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return common.ErrTokenMalformed
	}
	if err := s.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		s.log.Error(ctx, "revoke failed", "error", err)
		return common.ErrorInternal
	}
	s.log.Info(ctx, "logout", "account_id", claims.Subject)
	return nil
}

// TokenErrorKind names an authentication error the way clients see it.
func TokenErrorKind(err error) string {
	switch {
	case errors.Is(err, common.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, common.ErrTokenExpired):
		return "expired"
	case errors.Is(err, common.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, common.ErrScopeViolation):
		return "scope_violation"
	default:
		return "malformed"
	}
}
