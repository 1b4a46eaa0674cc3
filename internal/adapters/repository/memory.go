package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/domain/model"
	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/domain/types"
	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/pkg/metrics"
)

// MemoryStore implements Store with a mutex-guarded map of activities.
// One exclusive lock covers every mutation; reads take the shared lock.
// The store lives for the process lifetime and is never persisted.
type MemoryStore struct {
	mu sync.RWMutex

	activities map[string]*model.Activity

	enforceCapacity bool
}

// NewMemoryStore creates a registry pre-populated with the given activities.
// Duplicate activity names keep the first occurrence.
func NewMemoryStore(ctx context.Context, catalog []model.Activity, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		activities: make(map[string]*model.Activity, len(catalog)),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	for i := range catalog {
		a := catalog[i]
		if _, ok := s.activities[a.Name]; ok {
			continue
		}
		s.activities[a.Name] = &a
		metrics.UpdateRosterSize(a.Name, a.Roster.Len())
	}
	metrics.UpdateActivityCount(len(s.activities))
	metrics.UpdateParticipantCount(s.participantCountLocked())

	return s
}

// List returns a snapshot of the full registry keyed by activity name.
func (s *MemoryStore) List(ctx context.Context) map[string]types.ActivityView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]types.ActivityView, len(s.activities))
	for name, a := range s.activities {
		out[name] = types.ActivityView{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Roster.Emails(),
		}
	}
	return out
}

// Signup adds email to the named activity's roster.
func (s *MemoryStore) Signup(ctx context.Context, activity, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activity]
	if !ok {
		return fmt.Errorf("signup %q: %w", activity, ErrActivityNotFound)
	}
	if a.Roster.Contains(email) {
		return fmt.Errorf("signup %q for %q: %w", email, activity, ErrAlreadySignedUp)
	}
	if s.enforceCapacity && a.AtCapacity() {
		return fmt.Errorf("signup %q for %q: %w", email, activity, ErrActivityFull)
	}

	a.Roster.Add(email)
	metrics.UpdateRosterSize(activity, a.Roster.Len())
	metrics.UpdateParticipantCount(s.participantCountLocked())
	return nil
}

// Remove deletes email from the named activity's roster.
func (s *MemoryStore) Remove(ctx context.Context, activity, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activity]
	if !ok {
		return fmt.Errorf("remove from %q: %w", activity, ErrActivityNotFound)
	}
	if !a.Roster.Remove(email) {
		return fmt.Errorf("remove %q from %q: %w", email, activity, ErrParticipantNotFound)
	}

	metrics.UpdateRosterSize(activity, a.Roster.Len())
	metrics.UpdateParticipantCount(s.participantCountLocked())
	return nil
}

// Count returns the number of activities in the registry.
func (s *MemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// ParticipantCount returns the number of participants across all activities.
func (s *MemoryStore) ParticipantCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.participantCountLocked()
}

// participantCountLocked must be called with at least the read lock held.
func (s *MemoryStore) participantCountLocked() int {
	total := 0
	for _, a := range s.activities {
		total += a.Roster.Len()
	}
	return total
}
