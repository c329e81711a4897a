package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/repository"
	"main/services"

	"github.com/gin-gonic/gin"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *repository.SessionRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	services.InitTokenSigner("test-secret")

	store, err := repository.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	sessionRepo := repository.GetSessionRepo(store)

	router := gin.New()
	router.Use(SessionMiddleware(sessionRepo))

	router.POST("/login", func(c *gin.Context) {
		if _, err := CreateSession(c, "alice", time.Hour, sessionRepo); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	protected := router.Group("/")
	protected.Use(AuthMiddleware())
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})

	return router, sessionRepo
}

func login(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/130.0")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Login failed: %d %s", w.Code, w.Body.String())
	}

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("Login did not set the session cookie")
	return nil
}

func TestSessionCookieFlow(t *testing.T) {
	router, _ := newSessionRouter(t)
	cookie := login(t, router)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"username":"alice"}` {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestProtectedRouteRejections(t *testing.T) {
	router, sessionRepo := newSessionRouter(t)

	t.Run("No cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("Tampered cookie", func(t *testing.T) {
		cookie := login(t, router)
		cookie.Value += "x"

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("Ended session", func(t *testing.T) {
		cookie := login(t, router)
		if err := sessionRepo.EndAllUserSessions("alice"); err != nil {
			t.Fatalf("EndAllUserSessions failed: %v", err)
		}

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 after logout-all, got %d", w.Code)
		}
	})
}

func TestCreateSessionRecordsDevice(t *testing.T) {
	router, sessionRepo := newSessionRouter(t)
	login(t, router)

	sessions, err := sessionRepo.GetUserActiveSessions("alice")
	if err != nil {
		t.Fatalf("GetUserActiveSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 active session, got %d", len(sessions))
	}

	s := sessions[0]
	if s.SessionID == "" || s.DeviceInfo == "" || s.DisplayName == "" {
		t.Errorf("Session metadata incomplete: %+v", s)
	}
	if !s.IsActive {
		t.Error("New session should be active")
	}
	if !s.ExpiresAt.After(time.Now()) {
		t.Error("New session should not be expired")
	}
}
