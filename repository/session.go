package repository

import (
	"fmt"
	"log"
	"time"

	"main/model"
	"main/services"
)

type SessionRepo struct {
	Store *Store
}

func GetSessionRepo(store *Store) *SessionRepo {
	return &SessionRepo{Store: store}
}

func (r *SessionRepo) CreateSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}
	if session.SessionID == "" || session.Username == "" {
		return fmt.Errorf("invalid session data: missing required fields")
	}

	err := UpdateCollection(r.Store, SessionsCollection, func(sessions []model.Session) ([]model.Session, error) {
		return append(sessions, *session), nil
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(session); err != nil {
			log.Printf("Warning: Failed to cache session: %v", err)
		}
	}
	return nil
}

// GetSession reads from the Redis cache when available, falling back to the
// store on a miss.
func (r *SessionRepo) GetSession(sessionID string) (*model.Session, error) {
	if services.GlobalSessionCache != nil {
		cached, err := services.GlobalSessionCache.GetSession(sessionID)
		if err != nil {
			log.Printf("Warning: session cache read failed: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	sessions, err := LoadCollection[model.Session](r.Store, SessionsCollection)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].SessionID == sessionID {
			return &sessions[i], nil
		}
	}
	return nil, ErrSessionNotFound
}

func (r *SessionRepo) UpdateSession(session *model.Session) error {
	err := UpdateCollection(r.Store, SessionsCollection, func(sessions []model.Session) ([]model.Session, error) {
		for i := range sessions {
			if sessions[i].SessionID == session.SessionID {
				sessions[i] = *session
				return sessions, nil
			}
		}
		return nil, ErrSessionNotFound
	})
	if err != nil {
		return err
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(session); err != nil {
			log.Printf("Warning: Failed to refresh cached session: %v", err)
		}
	}
	return nil
}

func (r *SessionRepo) DeleteSession(sessionID string) error {
	err := UpdateCollection(r.Store, SessionsCollection, func(sessions []model.Session) ([]model.Session, error) {
		kept := sessions[:0]
		found := false
		for i := range sessions {
			if sessions[i].SessionID == sessionID {
				found = true
				continue
			}
			kept = append(kept, sessions[i])
		}
		if !found {
			return nil, ErrSessionNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.DeleteSession(sessionID); err != nil {
			log.Printf("Warning: Failed to evict cached session: %v", err)
		}
	}
	return nil
}

// GetUserActiveSessions returns the user's live sessions, newest first.
func (r *SessionRepo) GetUserActiveSessions(username string) ([]model.Session, error) {
	sessions, err := LoadCollection[model.Session](r.Store, SessionsCollection)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var active []model.Session
	for i := range sessions {
		s := sessions[i]
		if s.Username == username && s.IsActive && now.Before(s.ExpiresAt) {
			active = append(active, s)
		}
	}
	for i, j := 0, len(active)-1; i < j; i, j = i+1, j-1 {
		active[i], active[j] = active[j], active[i]
	}
	return active, nil
}

// EndAllUserSessions deactivates every session owned by the user.
func (r *SessionRepo) EndAllUserSessions(username string) error {
	var ended []string
	err := UpdateCollection(r.Store, SessionsCollection, func(sessions []model.Session) ([]model.Session, error) {
		for i := range sessions {
			if sessions[i].Username == username && sessions[i].IsActive {
				sessions[i].IsActive = false
				ended = append(ended, sessions[i].SessionID)
			}
		}
		return sessions, nil
	})
	if err != nil {
		return err
	}

	if services.GlobalSessionCache != nil {
		for _, id := range ended {
			if err := services.GlobalSessionCache.DeleteSession(id); err != nil {
				log.Printf("Warning: Failed to evict cached session: %v", err)
			}
		}
	}
	return nil
}

// PruneExpiredSessions drops sessions past their expiry from the store.
func (r *SessionRepo) PruneExpiredSessions(now time.Time) error {
	return UpdateCollection(r.Store, SessionsCollection, func(sessions []model.Session) ([]model.Session, error) {
		kept := sessions[:0]
		for i := range sessions {
			if now.Before(sessions[i].ExpiresAt) {
				kept = append(kept, sessions[i])
			}
		}
		return kept, nil
	})
}
