package dto

import "main/model"

type NotificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
	Count         int                  `json:"count"` // Soon entries only
}
