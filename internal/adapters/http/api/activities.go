// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ActivityLister defines the interface for listing activities.
type ActivityLister interface {
	Activities(ctx context.Context) map[string]ActivityView
}

// ActivitiesHandler handles activity listing requests.
type ActivitiesHandler struct {
	deps ActivityLister
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivityLister) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleGetActivities handles GET /activities requests.
// The response is a JSON object keyed by activity name; participant
// arrays preserve signup order.
func (h *ActivitiesHandler) HandleGetActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Activities(r.Context()))
}
