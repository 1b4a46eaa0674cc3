// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	repository "github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/adapters/repository"
)

// RemoveDependencies defines the interface for participant removal.
type RemoveDependencies interface {
	Remove(ctx context.Context, activity, email string) (string, error)
}

// ParticipantsHandler handles participant removal requests.
type ParticipantsHandler struct {
	deps RemoveDependencies
}

// NewParticipantsHandler creates a new participants handler.
func NewParticipantsHandler(deps RemoveDependencies) *ParticipantsHandler {
	return &ParticipantsHandler{deps: deps}
}

// HandleRemove handles DELETE /activities/{activity}/participants/{email} requests.
func (h *ParticipantsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.PathValue("email")

	msg, err := h.deps.Remove(r.Context(), activity, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, repository.ErrParticipantNotFound):
			writeDetail(w, http.StatusNotFound, "Participant not found")
		default:
			writeDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}
