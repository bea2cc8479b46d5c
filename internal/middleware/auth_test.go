package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"training-tracker/internal/auth"

	"github.com/gin-gonic/gin"
)

func newGateEngine(tokens *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", Auth(tokens), func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": id.UserID})
	})
	return r
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.New("gate-secret", time.Hour)
	r := newGateEngine(tokens)

	tok, err := tokens.Issue(auth.Identity{UserID: 7, Email: "t@x.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	w := request(r, "Bearer "+tok)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	tokens := auth.New("gate-secret", time.Hour)
	r := newGateEngine(tokens)

	tok, _ := tokens.Issue(auth.Identity{UserID: 7})

	cases := []string{
		"",             // no header at all
		"Bearer",       // no token part
		"Token " + tok, // wrong scheme
		tok,            // bare token without scheme
	}
	for _, header := range cases {
		w := request(r, header)
		if w.Code != http.StatusForbidden {
			t.Errorf("header %q: status = %d, want 403", header, w.Code)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.New("gate-secret", time.Hour)
	r := newGateEngine(tokens)

	other := auth.New("other-secret", time.Hour)
	foreign, _ := other.Issue(auth.Identity{UserID: 7})

	for _, bad := range []string{"garbage", foreign} {
		w := request(r, "Bearer "+bad)
		if w.Code != http.StatusForbidden {
			t.Errorf("token %q: status = %d, want 403", bad, w.Code)
		}
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	tokens := auth.NewWithClock("gate-secret", time.Hour, func() time.Time { return current })
	r := newGateEngine(tokens)

	tok, err := tokens.Issue(auth.Identity{UserID: 7})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	current = current.Add(61 * time.Minute)
	w := request(r, "Bearer "+tok)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
