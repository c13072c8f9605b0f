package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/foodgram/internal/auth"
	"github.com/mmynk/foodgram/internal/models"
)

const testSecret = "test-secret-key-at-least-32-characters"

func newToken(t *testing.T, jwtManager *auth.JWTManager) (string, *models.User) {
	t.Helper()
	user := models.NewUser("anna@example.com", "anna", "Anna", "K", "hash")
	token, err := jwtManager.Generate(user)
	require.NoError(t, err)
	return token, user
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"missing", "", "", auth.ErrMissingToken},
		{"bearer", "Bearer abc.def", "abc.def", nil},
		{"lowercase scheme", "bearer abc", "abc", nil},
		{"token scheme", "Token abc", "", auth.ErrInvalidToken},
		{"no token", "Bearer ", "", auth.ErrInvalidToken},
		{"no space", "Bearerabc", "", auth.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}
			got, err := bearerToken(header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// unaryCall runs interceptor around a handler that records the user ID it sees.
func unaryCall(interceptor connect.UnaryInterceptorFunc, authorization string) (string, error) {
	var seen string
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = GetUserID(ctx)
		return connect.NewResponse(&struct{}{}), nil
	}

	req := connect.NewRequest(&struct{}{})
	if authorization != "" {
		req.Header().Set("Authorization", authorization)
	}
	_, err := interceptor(next)(context.Background(), req)
	return seen, err
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	token, user := newToken(t, jwtManager)
	interceptor := RequireAuth(jwtManager)

	t.Run("valid token", func(t *testing.T) {
		seen, err := unaryCall(interceptor, "Bearer "+token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, seen)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := unaryCall(interceptor, "")
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("forged token", func(t *testing.T) {
		other := auth.NewJWTManager("another-secret-key-at-least-32-chars", time.Hour)
		forged, _ := newToken(t, other)
		_, err := unaryCall(interceptor, "Bearer "+forged)
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	token, user := newToken(t, jwtManager)
	interceptor := OptionalAuth(jwtManager)

	seen, err := unaryCall(interceptor, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, seen)

	seen, err = unaryCall(interceptor, "")
	require.NoError(t, err)
	assert.Empty(t, seen)

	seen, err = unaryCall(interceptor, "Bearer garbage")
	require.NoError(t, err)
	assert.Empty(t, seen, "invalid tokens fall back to anonymous")
}

func TestRequireAuthHTTP(t *testing.T) {
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	token, user := newToken(t, jwtManager)

	handler := RequireAuthHTTP(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, user.ID, GetUserID(r.Context()))
		assert.Equal(t, user.Email, GetEmail(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("authorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	for name, header := range map[string]string{
		"missing": "",
		"invalid": "Bearer not-a-jwt",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["detail"])
		})
	}
}
