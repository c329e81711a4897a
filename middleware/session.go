package middleware

import (
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "session_token"

// InactivityTimeout ends sessions that have gone quiet even if the cookie has
// not expired yet.
const InactivityTimeout = 48 * time.Hour

type SessionRepository interface {
	CreateSession(*model.Session) error
	GetSession(string) (*model.Session, error)
	UpdateSession(*model.Session) error
	DeleteSession(string) error
}

// SessionMiddleware resolves the signed session cookie to a session record and
// stores it on the context. Requests without a valid session pass through
// anonymously; AuthMiddleware decides which routes require one.
func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.Next()
			return
		}

		sessionID, err := services.ParseSessionToken(tokenString)
		if err != nil {
			clearSessionCookie(c)
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(sessionID)
		if err != nil || !session.IsActive || time.Now().After(session.ExpiresAt) {
			clearSessionCookie(c)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > InactivityTimeout {
			session.IsActive = false
			sessionRepo.UpdateSession(session)
			clearSessionCookie(c)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		sessionRepo.UpdateSession(session)

		c.Set("session", session)
		c.Set("username", session.Username)
		c.Next()
	}
}

// CreateSession opens a session for the user and sets the signed cookie.
func CreateSession(c *gin.Context, username string, duration time.Duration, sessionRepo *repository.SessionRepo) (*model.Session, error) {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	now := time.Now()
	session := &model.Session{
		SessionID:      uuid.New().String(),
		Username:       username,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     browser + " on " + os + " (" + device + ")",
		CreatedAt:      now,
		ExpiresAt:      now.Add(duration),
		LastActivityAt: now,
		IPAddress:      c.ClientIP(),
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(session); err != nil {
		return nil, err
	}

	token, err := services.GenerateSessionToken(session.SessionID, username, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	c.SetCookie(
		SessionCookieName,
		token,
		int(duration.Seconds()),
		"/",
		"",
		true,
		true,
	)
	return session, nil
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}

// SessionFromContext returns the resolved session, or nil for anonymous
// requests.
func SessionFromContext(c *gin.Context) *model.Session {
	value, exists := c.Get("session")
	if !exists {
		return nil
	}
	session, ok := value.(*model.Session)
	if !ok {
		return nil
	}
	return session
}
