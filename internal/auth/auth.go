// Package auth verifies HS256 bearer tokens issued by the identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/farmfeed/farmfeed/internal/http/respond"
	"github.com/farmfeed/farmfeed/internal/user"
)

var ErrMissingToken = errors.New("missing bearer token")

type Claims struct {
	Role         string   `json:"role"`
	Capabilities []string `json:"caps,omitempty"`

	jwt.RegisteredClaims
}

// UserID is the token subject parsed as a user id.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type ctxKey struct{}

func NewContext(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok
}

// ActAs fails with user.ErrForbidden unless the verified caller is userID or an
// admin. Requests that carry no claims pass, which is the case when token
// verification is switched off.
func ActAs(ctx context.Context, userID uuid.UUID) error {
	c, ok := FromContext(ctx)
	if !ok || c.Role == string(user.RoleAdmin) {
		return nil
	}

	if sub, err := c.UserID(); err != nil || sub != userID {
		return fmt.Errorf("%w: token subject cannot act as %s", user.ErrForbidden, userID)
	}

	return nil
}

// Sign issues a token for claims. The service only verifies tokens; Sign
// exists for tooling and tests.
func Sign(secret []byte, c *Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func Verify(secret []byte, header string) (*Claims, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("token subject: %w", err)
	}

	return claims, nil
}

// Middleware rejects requests without a valid token and stores the verified
// claims in the request context.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := Verify(secret, r.Header.Get("Authorization"))
			if err != nil {
				slog.DebugContext(r.Context(), "rejected request", "path", r.URL.Path, "error", err)
				respond.Fail(w, http.StatusUnauthorized, "Unauthorized")

				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), claims)))
		})
	}
}
