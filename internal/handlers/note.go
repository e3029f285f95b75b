package handlers

import (
	"errors"
	"net/http"

	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/auth"
	dom "github.com/Hamza-Shahid10/ENotebook-Backend/internal/domain"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/dto"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles per-user note CRUD.
type NoteHandler struct {
	svc *service.NoteService
}

// NewNoteHandler returns a new NoteHandler.
func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// List godoc
// @Summary      List the authenticated user's notes
// @Tags         notes
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   dto.NoteResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notes/fetch-all-notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, notesToResponses(list))
}

// Add godoc
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      dto.AddNoteRequest  true  "Note body"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /notes/add-note [post]
func (h *NoteHandler) Add(c *gin.Context) {
	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID := auth.UserIDFromContext(c)
	n, err := h.svc.Add(c.Request.Context(), userID, req.Title, req.Description, req.Tag)
	if err != nil {
		respondNoteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Note added successfully", "note": noteToResponse(n)})
}

// Update godoc
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string  true  "Note ID"
// @Param        body  body      dto.UpdateNoteRequest  true  "Partial update"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /notes/update-note/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID := auth.UserIDFromContext(c)
	n, err := h.svc.Update(c.Request.Context(), userID, c.Param("id"), req.Title, req.Description, req.Tag)
	if err != nil {
		respondNoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully", "note": noteToResponse(n)})
}

// Delete godoc
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/delete-note/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	n, err := h.svc.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondNoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully", "note": noteToResponse(n)})
}

func respondNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTitle):
		respondFieldError(c, "title")
	case errors.Is(err, service.ErrInvalidDescription):
		respondFieldError(c, "description")
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func noteToResponse(n dom.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Title:       n.Title,
		Description: n.Description,
		Tag:         n.Tag,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func notesToResponses(list []dom.Note) []dto.NoteResponse {
	out := make([]dto.NoteResponse, len(list))
	for i := range list {
		out[i] = noteToResponse(list[i])
	}
	return out
}
