// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	repository "github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/adapters/repository"
)

// SignupDependencies defines the interface for signup operations.
type SignupDependencies interface {
	Signup(ctx context.Context, activity, email string) (string, error)
}

// SignupHandler handles signup requests.
type SignupHandler struct {
	deps SignupDependencies
}

// NewSignupHandler creates a new signup handler.
func NewSignupHandler(deps SignupDependencies) *SignupHandler {
	return &SignupHandler{deps: deps}
}

// HandleSignup handles POST /activities/{activity}/signup?email=... requests.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Missing email")
		return
	}

	msg, err := h.deps.Signup(r.Context(), activity, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, repository.ErrAlreadySignedUp):
			writeDetail(w, http.StatusBadRequest, email+" already signed up")
		case errors.Is(err, repository.ErrActivityFull):
			writeDetail(w, http.StatusBadRequest, "Activity is full")
		default:
			writeDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}
