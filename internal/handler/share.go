package handler

import (
	"net/http"

	"github.com/sharenotes/sharenotes-go/internal/model"
	"github.com/sharenotes/sharenotes-go/internal/service"
)

// ShareHandler handles HTTP requests for note sharing.
type ShareHandler struct {
	service *service.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(svc *service.ShareService) *ShareHandler {
	return &ShareHandler{service: svc}
}

// HandleShare handles POST /notes/share/{id} requests.
func (h *ShareHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req model.ShareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Share(r.Context(), id, pathID(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListShared handles GET /notes/share requests.
func (h *ShareHandler) HandleListShared(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	shared, err := h.service.ListSharedWithMe(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}

// HandleRevoke handles DELETE /notes/share/{id}/{share_id} requests.
func (h *ShareHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.service.Revoke(r.Context(), id, pathID(r, "id"), pathID(r, "share_id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Note sharing revoked successfully"})
}
