// Package repository defines the activity registry store interface and errors.
package repository

import (
	"context"

	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/domain/types"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// List returns a snapshot of the full registry keyed by activity name.
	// Participant slices are copies in insertion order.
	List(ctx context.Context) map[string]types.ActivityView

	// Signup adds email to an activity's roster.
	// Returns ErrActivityNotFound, ErrAlreadySignedUp, or ErrActivityFull.
	Signup(ctx context.Context, activity, email string) error

	// Remove deletes email from an activity's roster.
	// Returns ErrActivityNotFound or ErrParticipantNotFound.
	Remove(ctx context.Context, activity, email string) error

	// Count returns the number of activities in the registry.
	Count(ctx context.Context) int

	// ParticipantCount returns the number of participants across all activities.
	ParticipantCount(ctx context.Context) int
}
