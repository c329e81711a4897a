package dto

import (
	"time"

	"main/model"
)

// SessionResponse omits internal flags and the raw session id.
type SessionResponse struct {
	DisplayName    string    `json:"display_name"`
	DeviceInfo     string    `json:"device_info"`
	IPAddress      string    `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	Current        bool      `json:"current"`
}

func ToSessionResponses(sessions []model.Session, currentID string) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = SessionResponse{
			DisplayName:    sessions[i].DisplayName,
			DeviceInfo:     sessions[i].DeviceInfo,
			IPAddress:      sessions[i].IPAddress,
			CreatedAt:      sessions[i].CreatedAt,
			LastActivityAt: sessions[i].LastActivityAt,
			Current:        sessions[i].SessionID == currentID,
		}
	}
	return responses
}
