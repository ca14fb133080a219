// Package credentials generates first-use credentials for provisioned
// accounts and turns passwords into argon2id verifiers.
package credentials

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	PasswordLength     = 12
	DefaultMaxAttempts = 5

	lowerChars  = "abcdefghijkmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digitChars  = "23456789"
	symbolChars = "!@#$%^&*-_=+?"

	fallbackSlug = "user"
	maxSlugLen   = 32
)

// Credential is the plaintext pair handed to the new account holder.
// It lives in memory only; call Wipe once it has been delivered.
type Credential struct {
	Username string
	Password []byte
}

func (c *Credential) Wipe() {
	if c == nil {
		return
	}
	common.WipeByteArray(c.Password)
	c.Password = nil
}

// ClaimFunc atomically reserves username for the new account. It returns
// common.ErrUsernameTaken when the name is already in use; any other error
// stops generation.
type ClaimFunc func(ctx context.Context, username string, password []byte) error

type Generator struct {
	maxAttempts int
}

func NewGenerator(maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{maxAttempts: maxAttempts}
}

// Generate draws a password and walks the username candidates for
// (tenantID, hint) until claim accepts one:
//
//	alice.utm, alice2.utm, alice3.utm, ...
//
// After maxAttempts rejected candidates it fails with common.ErrGenerationExhausted.
func (g *Generator) Generate(ctx context.Context, tenantID string, role models.Role, hint string, claim ClaimFunc) (*Credential, error) {
	password, err := NewPassword()
	if err != nil {
		return nil, err
	}
	cred := &Credential{Password: password}

	slug := Slug(hint)
	for i := 0; i < g.maxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			cred.Wipe()
			return nil, err
		}

		username := Candidate(slug, tenantID, role, i)
		err := claim(ctx, username, password)
		if err == nil {
			cred.Username = username
			return cred, nil
		}
		if !errors.Is(err, common.ErrUsernameTaken) {
			cred.Wipe()
			return nil, err
		}
	}

	cred.Wipe()
	return nil, fmt.Errorf("%w: %d candidates for %q taken", common.ErrGenerationExhausted, g.maxAttempts, slug)
}

// Candidate returns the attempt-th username for slug. Attempt 0 is the bare
// slug; later attempts carry a numeric suffix starting at 2.
func Candidate(slug, tenantID string, role models.Role, attempt int) string {
	name := slug
	if attempt > 0 {
		name += strconv.Itoa(attempt + 1)
	}
	if tenantID == "" || role.IsGlobal() {
		return name
	}
	return name + "." + strings.ToLower(tenantID)
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug reduces the first word of a display name to lower-case ASCII letters
// and digits. "Ștefan Popescu" becomes "stefan".
func Slug(hint string) string {
	var first string
	if words := strings.Fields(hint); len(words) > 0 {
		first = words[0]
	}

	folded, _, err := transform.String(foldDiacritics, first)
	if err != nil {
		folded = first
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == maxSlugLen {
			break
		}
	}
	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}

// NewPassword returns PasswordLength characters from crypto/rand with at
// least one lower-case letter, upper-case letter, digit and symbol.
func NewPassword() ([]byte, error) {
	classes := []string{lowerChars, upperChars, digitChars, symbolChars}
	all := lowerChars + upperChars + digitChars + symbolChars

	pw := make([]byte, PasswordLength)
	for i := range pw {
		set := all
		if i < len(classes) {
			set = classes[i]
		}
		c, err := randomIndex(len(set))
		if err != nil {
			return nil, err
		}
		pw[i] = set[c]
	}

	for i := len(pw) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			common.WipeByteArray(pw)
			return nil, err
		}
		pw[i], pw[j] = pw[j], pw[i]
	}
	return pw, nil
}

func randomIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random: %w", err)
	}
	return int(v.Int64()), nil
}
