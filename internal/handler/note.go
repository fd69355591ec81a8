package handler

import (
	"net/http"

	"github.com/sharenotes/sharenotes-go/internal/middleware"
	"github.com/sharenotes/sharenotes-go/internal/model"
	"github.com/sharenotes/sharenotes-go/internal/service"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	service *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{service: svc}
}

// HandleList handles GET /notes requests.
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	notes, err := h.service.List(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// HandleCreate handles POST /notes requests.
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req model.CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGet handles GET /notes/{id} requests.
func (h *NoteHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	note, err := h.service.Get(r.Context(), id, pathID(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// HandleUpdate handles PUT /notes/{id} requests.
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req model.UpdateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Update(r.Context(), id, pathID(r, "id"), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Note updated successfully"})
}

// HandleDelete handles DELETE /notes/{id} requests.
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, pathID(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Note deleted successfully"})
}

func identity(w http.ResponseWriter, r *http.Request) (model.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid token"))
	}
	return id, ok
}
