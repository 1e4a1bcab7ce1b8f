package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/leon37/SavingsCoach/internal/model"
)

type stubVerifier struct {
	claims *model.AuthClaims
	err    error
}

func (v stubVerifier) VerifyToken(string) (*model.AuthClaims, error) {
	return v.claims, v.err
}

func echoUserID(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userID": c.GetString(ContextUserID)})
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	valid := stubVerifier{claims: &model.AuthClaims{UserID: "u1", Email: "a@b.com"}}
	invalid := stubVerifier{err: errors.New("bad token")}

	cases := []struct {
		name       string
		verifier   TokenVerifier
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{"valid token", valid, "Bearer token", http.StatusOK, `"u1"`},
		{"missing header", valid, "", http.StatusUnauthorized, "Unauthorized"},
		{"wrong scheme", valid, "Basic token", http.StatusUnauthorized, "Unauthorized"},
		{"empty token", valid, "Bearer ", http.StatusUnauthorized, "Unauthorized"},
		{"rejected token", invalid, "Bearer token", http.StatusUnauthorized, "Invalid token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/protected", JWTAuth(tc.verifier), echoUserID)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestOptionalAuthPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	valid := stubVerifier{claims: &model.AuthClaims{UserID: "u1"}}
	invalid := stubVerifier{err: errors.New("bad token")}

	run := func(verifier TokenVerifier, header string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/open", OptionalAuth(verifier), echoUserID)
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// Valid token pins the identity.
	w := run(valid, "Bearer token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"u1"`)

	// No token and invalid token both fall through as anonymous.
	for _, header := range []string{"", "Bearer junk"} {
		w = run(invalid, header)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userID":""`)
	}
}
