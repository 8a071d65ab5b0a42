package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dealflow/pkg/utils"
)

func newProtectedRouter(tokens *utils.TokenMaker) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seenUserID string
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(tokens), func(c *gin.Context) {
		seenUserID = c.GetString("user_id")
		c.Status(http.StatusOK)
	})
	return r, &seenUserID
}

func TestGateRejectsBadAuthorization(t *testing.T) {
	tokens := utils.NewTokenMaker("secret", time.Hour)
	r, seenUserID := newProtectedRouter(tokens)

	expired, err := utils.NewTokenMaker("secret", -time.Minute).CreateToken(uuid.New())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abcdef"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if *seenUserID != "" {
				t.Errorf("handler ran with user_id %q", *seenUserID)
			}
		})
	}
}

func TestGatePassesValidTokenAndSetsUserID(t *testing.T) {
	tokens := utils.NewTokenMaker("secret", time.Hour)
	r, seenUserID := newProtectedRouter(tokens)

	userID := uuid.New()
	token, err := tokens.CreateToken(userID)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if *seenUserID != userID.String() {
		t.Errorf("user_id = %q, want %s", *seenUserID, userID)
	}
}
