package handler

import (
	"errors"
	"strconv"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetUserEventsHandler(c *gin.Context, eventsService *usecase.EventsService) {
	username := c.GetString("username")

	events, err := eventsService.GetUserEvents(username)
	if err != nil {
		utils.InternalError(c, "Failed to fetch events")
		return
	}
	if events == nil {
		events = []model.Event{}
	}

	utils.Success(c, gin.H{"events": events})
}

func CreateEventHandler(c *gin.Context, eventsService *usecase.EventsService) {
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	event.Owner = c.GetString("username")
	if err := eventsService.CreateEvent(&event); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"event": event})
}

// DeleteEventHandler removes an event. Events have no edit operation.
func DeleteEventHandler(c *gin.Context, eventsService *usecase.EventsService) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid event id")
		return
	}
	username := c.GetString("username")

	if err := eventsService.DeleteEvent(eventID, username); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			utils.NotFound(c, "Event not found")
			return
		}
		utils.InternalError(c, "Failed to delete event")
		return
	}

	utils.Success(c, gin.H{"message": "Event deleted"})
}
