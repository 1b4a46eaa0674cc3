// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	repository "github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/adapters/repository"
	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/catalog"
	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/domain/model"
	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/domain/types"
	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/pkg/logger"
	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/pkg/metrics"
)

// Service owns the activity registry and implements the API dependencies.
type Service struct {
	mu sync.RWMutex

	// Core components
	registry repository.Store

	// Configuration
	seed            []model.Activity
	enforceCapacity bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalog sets the activities the registry is seeded with at start.
func WithCatalog(activities []model.Activity) Option {
	return func(s *Service) {
		if len(activities) > 0 {
			s.seed = activities
		}
	}
}

// WithCapacityEnforcement toggles rejection of signups to full activities.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *Service) {
		s.enforceCapacity = enabled
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		seed:   catalog.BuiltIn(),
		logger: nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the registry. Safe to call once; later calls are no-ops.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.registry = repository.NewMemoryStore(ctx, s.seed,
		repository.WithCapacityEnforcement(s.enforceCapacity),
	)

	s.started = true
	s.logger.Info(ctx, "activity service started",
		logger.Int("activities", s.registry.Count(ctx)),
		logger.Int("participants", s.registry.ParticipantCount(ctx)),
		logger.Bool("enforceCapacity", s.enforceCapacity),
	)

	return nil
}

// Stop shuts down the service. The registry is in-memory only, so there is
// nothing to flush; the call exists for lifecycle symmetry.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "activity service stopped")
}

// Activities returns a snapshot of the full registry.
func (s *Service) Activities(ctx context.Context) map[string]types.ActivityView {
	return s.registry.List(ctx)
}

// Signup registers email for the named activity and returns the
// confirmation message.
func (s *Service) Signup(ctx context.Context, activity, email string) (string, error) {
	if err := s.registry.Signup(ctx, activity, email); err != nil {
		s.logger.Debug(ctx, "signup rejected",
			logger.String("activity", activity),
			logger.String("email", email),
			logger.Error(err),
		)
		metrics.RecordRejectedSignup(rejectionReason(err))
		return "", err
	}

	metrics.RecordSignup()
	s.logger.Info(ctx, "participant signed up",
		logger.String("activity", activity),
		logger.String("email", email),
	)
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Remove deletes email from the named activity and returns the
// confirmation message.
func (s *Service) Remove(ctx context.Context, activity, email string) (string, error) {
	if err := s.registry.Remove(ctx, activity, email); err != nil {
		s.logger.Debug(ctx, "removal rejected",
			logger.String("activity", activity),
			logger.String("email", email),
			logger.Error(err),
		)
		return "", err
	}

	metrics.RecordRemoval()
	s.logger.Info(ctx, "participant removed",
		logger.String("activity", activity),
		logger.String("email", email),
	)
	return fmt.Sprintf("Removed %s from %s", email, activity), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":         s.started,
		"enforceCapacity": s.enforceCapacity,
	}

	if s.started {
		activities := s.registry.Count(ctx)
		participants := s.registry.ParticipantCount(ctx)

		stats["activities"] = activities
		stats["participants"] = participants

		// Update metrics
		metrics.UpdateActivityCount(activities)
		metrics.UpdateParticipantCount(participants)
	}

	return stats
}

// rejectionReason maps a signup error to a metrics label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrAlreadySignedUp):
		return "duplicate"
	case errors.Is(err, repository.ErrActivityFull):
		return "activity_full"
	case errors.Is(err, repository.ErrActivityNotFound):
		return "activity_not_found"
	default:
		return "unknown"
	}
}
