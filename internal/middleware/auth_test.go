package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hoangnln/testtrack/config"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(tokens service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(ContextUserID),
			"username": c.GetString(ContextUsername),
			"role":     c.GetString(ContextRole),
		})
	})
	return r
}

func authTestTokens() service.TokenService {
	return service.NewTokenService(&config.Config{
		JWT: config.JWT{Secret: "unit-test-secret", AccessTTL: 3600, RefreshTTL: 604800},
	})
}

func TestAuth_AllowsValidToken(t *testing.T) {
	tokens := authTestTokens()
	router := authTestRouter(tokens)

	user := &model.User{ID: "11111111-1111-1111-1111-111111111111", Username: "alice", Email: "alice@example.com", Role: model.RoleAdmin}
	signed, err := tokens.GenerateAccessToken(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestAuth_RejectsMissingAndMalformedHeaders(t *testing.T) {
	router := authTestRouter(authTestTokens())

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc123",
		"garbage token":  "Bearer not-a-jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		})
	}
}

func TestAuth_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	router := authTestRouter(authTestTokens())
	otherTokens := service.NewTokenService(&config.Config{
		JWT: config.JWT{Secret: "some-other-secret", AccessTTL: 3600, RefreshTTL: 604800},
	})

	signed, err := otherTokens.GenerateAccessToken(&model.User{ID: "x", Username: "mallory", Role: model.RoleViewer})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
