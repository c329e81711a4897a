package handler

import (
	"log"
	"time"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetNotificationsHandler computes the live due-item list. Viewing it flips
// the session's checked_notifications flag, which feeds the
// check_notifications quest.
func GetNotificationsHandler(c *gin.Context, notificationService *usecase.NotificationService, sessionRepo *repository.SessionRepo) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Not logged in")
		return
	}

	if !session.CheckedNotifications {
		session.CheckedNotifications = true
		if err := sessionRepo.UpdateSession(session); err != nil {
			// The list is still served; the quest flag just lags a request.
			log.Printf("failed to record notifications check: %v", err)
			middleware.TrackError("session")
		}
	}

	now := time.Now()
	if notificationService.Now != nil {
		now = notificationService.Now()
	}

	notifications, err := notificationService.ComputeNotifications(session.Username, now)
	if err != nil {
		utils.InternalError(c, "Failed to compute notifications")
		return
	}
	middleware.NotificationsComputedTotal.Inc()

	count := 0
	for i := range notifications {
		if notifications[i].Soon {
			count++
		}
	}

	utils.Success(c, dto.NotificationsResponse{
		Notifications: notifications,
		Count:         count,
	})
}
