package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"notesapi/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errListNotes   = "failed to load notes"
	errSearchNotes = "failed to search notes"

	// Confirmation message formats, preserved verbatim for compatibility
	// with existing clients (including the "Udate" typo).
	msgCreateFmt = "Create the note: %s successfully"
	msgUpdateFmt = "Udate note id: %d successfully"
	msgDeleteFmt = "Delete the note id: %d successfully"
	msgShareFmt  = "Share the note: %s with user: %s successfully"
)

// Request DTO for creating/updating a note.
type noteRequest struct {
	Content string `json:"content" binding:"required"`
}

// Request DTO for sharing a note with another user.
type shareRequest struct {
	Username string `json:"username" binding:"required"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "requestId", c.GetString("requestId")}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// noteIDParam parses the :id path segment. A non-numeric segment does not
// address any note, so it reads as 404 rather than 400.
func (h *Handler) noteIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNoteNotFound.Error()})
		return 0, false
	}
	return id, true
}

// respondNoteError maps service errors onto HTTP statuses.
func (h *Handler) respondNoteError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "internal error", logKey, err, kv...)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List notes
// @Tags         notes
// @Produce      json
// @Success      200  {array}   models.Note
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notes/ [get]
// @Security     TokenAuth
func (h *Handler) listNotes(c *gin.Context) {
	ctx := c.Request.Context()
	notes, err := h.services.Notes.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListNotes, "notes_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// @Summary      Get a note
// @Tags         notes
// @Produce      json
// @Param        id   path      int  true  "Note ID"
// @Success      200  {object}  models.Note
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [get]
// @Security     TokenAuth
func (h *Handler) getNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}
	note, err := h.services.Notes.Get(c.Request.Context(), id)
	if err != nil {
		h.respondNoteError(c, "note_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, note)
}

// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        body  body   noteRequest  true  "Note payload"
// @Success      200   {string}  string
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /notes/ [post]
// @Security     TokenAuth
func (h *Handler) createNote(c *gin.Context) {
	var req noteRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	userID := c.GetInt("userId")
	note, err := h.services.Notes.Create(c.Request.Context(), userID, req.Content)
	if err != nil {
		h.respondNoteError(c, "note_create_failed", err, "userId", userID)
		return
	}
	c.JSON(http.StatusOK, fmt.Sprintf(msgCreateFmt, note.Content))
}

// @Summary      Update a note
// @Description  Replaces the note content in place; the owner is untouched.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id    path   int          true  "Note ID"
// @Param        body  body   noteRequest  true  "Note payload"
// @Success      200   {string}  string
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /notes/{id} [put]
// @Security     TokenAuth
func (h *Handler) updateNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}
	var req noteRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if err := h.services.Notes.Update(c.Request.Context(), id, req.Content); err != nil {
		h.respondNoteError(c, "note_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, fmt.Sprintf(msgUpdateFmt, id))
}

// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Param        id   path      int  true  "Note ID"
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [delete]
// @Security     TokenAuth
func (h *Handler) deleteNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}
	if err := h.services.Notes.Delete(c.Request.Context(), id); err != nil {
		h.respondNoteError(c, "note_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, fmt.Sprintf(msgDeleteFmt, id))
}

// @Summary      Share a note
// @Description  Copies the note content into a new note owned by the recipient.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id    path   int           true  "Note ID"
// @Param        body  body   shareRequest  true  "Recipient payload"
// @Success      200   {string}  string
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /notes/{id}/share [post]
// @Security     TokenAuth
func (h *Handler) shareNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}
	var req shareRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	note, err := h.services.Notes.Share(c.Request.Context(), id, req.Username)
	if err != nil {
		h.respondNoteError(c, "note_share_failed", err, "id", id, "recipient", req.Username)
		return
	}
	c.JSON(http.StatusOK, fmt.Sprintf(msgShareFmt, note.Content, req.Username))
}

// @Summary      Search notes
// @Description  Case-sensitive substring search over the caller's own notes.
// @Tags         notes
// @Produce      json
// @Param        query  path   string  true  "Substring to match"
// @Success      200    {array}   models.Note
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /search/{query} [get]
// @Security     TokenAuth
func (h *Handler) searchNotes(c *gin.Context) {
	userID := c.GetInt("userId")
	query := c.Param("query")
	notes, err := h.services.Notes.Search(c.Request.Context(), userID, query)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSearchNotes, "notes_search_failed", err, "userId", userID)
		return
	}
	c.JSON(http.StatusOK, notes)
}
