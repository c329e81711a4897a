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

func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	username := c.GetString("username")
	query := c.Query("q")

	notes, err := notesService.GetUserNotes(username, query)
	if err != nil {
		utils.InternalError(c, "Failed to fetch notes")
		return
	}
	if notes == nil {
		notes = []model.Note{}
	}

	utils.Success(c, gin.H{"notes": notes})
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var note model.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note.Owner = c.GetString("username")
	if err := notesService.CreateNote(&note); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"note": note})
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid note id")
		return
	}
	username := c.GetString("username")

	var updates model.Note
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := notesService.UpdateNote(noteID, username, &updates); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Note updated successfully"})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid note id")
		return
	}
	username := c.GetString("username")

	if err := notesService.DeleteNote(noteID, username); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to delete note")
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted"})
}
