package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmfeed/farmfeed/internal/auth"
	"github.com/farmfeed/farmfeed/internal/user"
)

var secret = []byte("test-secret")

func token(t *testing.T, key []byte, subject string, ttl time.Duration) string {
	t.Helper()

	tok, err := auth.Sign(key, &auth.Claims{
		Role:             "buyer",
		Capabilities:     []string{"buy"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}, ttl)
	require.NoError(t, err)

	return tok
}

func TestMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"Valid", "Bearer " + token(t, secret, userID.String(), time.Hour), http.StatusOK},
		{"Missing", "", http.StatusUnauthorized},
		{"WrongScheme", "Basic abc", http.StatusUnauthorized},
		{"WrongSecret", "Bearer " + token(t, []byte("other"), userID.String(), time.Hour), http.StatusUnauthorized},
		{"Expired", "Bearer " + token(t, secret, userID.String(), -time.Minute), http.StatusUnauthorized},
		{"SubjectNotUUID", "Bearer " + token(t, secret, "koos", time.Hour), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *auth.Claims

			h := auth.Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = auth.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/deals", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, rec.Body.String())
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, "buyer", got.Role)

			id, err := got.UserID()
			require.NoError(t, err)
			assert.Equal(t, userID, id)
		})
	}
}

func TestActAs(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		claims  *auth.Claims
		wantErr bool
	}{
		{name: "NoClaims"},
		{name: "Self", claims: &auth.Claims{Role: "seller", RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}}},
		{name: "Admin", claims: &auth.Claims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()}}},
		{name: "Other", claims: &auth.Claims{Role: "seller", RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()}}, wantErr: true},
		{name: "BadSubject", claims: &auth.Claims{Role: "seller", RegisteredClaims: jwt.RegisteredClaims{Subject: "koos"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.claims != nil {
				ctx = auth.NewContext(ctx, tt.claims)
			}

			err := auth.ActAs(ctx, userID)
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrForbidden)
				return
			}

			assert.NoError(t, err)
		})
	}
}
