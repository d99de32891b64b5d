package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/allbikes/dealerdesk/internal/config"
	"github.com/allbikes/dealerdesk/internal/requestctx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, exp, err := IssueToken(testSecret, "gm", RoleAdmin)
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "gm", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)

	t.Run("wrong secret is rejected", func(t *testing.T) {
		_, err := ParseToken("other-secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ParseToken(testSecret, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLogin(t *testing.T) {
	svc := New(Params{
		Config: config.Config{
			AuthJWTSecret: testSecret,
			AdminUsername: "gm",
			AdminPassword: "pedal-fast",
		},
		Log: zaptest.NewLogger(t),
	})

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), LoginRequest{Username: "gm", Password: "pedal-fast"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, RoleAdmin, resp.Role)

		claims, err := ParseToken(testSecret, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "gm", claims.Subject)
		assert.Equal(t, RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginRequest{Username: "gm", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unconfigured auth never authenticates", func(t *testing.T) {
		bare := New(Params{Config: config.Config{}, Log: zaptest.NewLogger(t)})
		_, err := bare.Login(context.Background(), LoginRequest{Username: "", Password: ""})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/admin",
			RequireAuth(testSecret),
			RequireAdmin(),
			func(c *gin.Context) {
				actor, _ := requestctx.ActorFromContext(c.Request.Context())
				c.JSON(http.StatusOK, gin.H{"subject": actor.Subject})
			},
		)
		return r
	}

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-admin role is forbidden", func(t *testing.T) {
		token, _, err := IssueToken(testSecret, "viewer", "viewer")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin token passes and exposes the actor", func(t *testing.T) {
		token, _, err := IssueToken(testSecret, "gm", RoleAdmin)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subject":"gm"`)
	})
}
