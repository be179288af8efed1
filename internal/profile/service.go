package profile

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Service provides profile operations on top of a Repository. It owns the
// server-side UpdatedAt stamp.
type Service struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates a new profile service.
func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Save stamps the profile with the current time and stores it, replacing any
// prior entry for the same user. Condition and lifestyle flags are stored
// without validation.
func (s *Service) Save(ctx context.Context, p *Profile) error {
	p.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, p); err != nil {
		return err
	}

	s.logger.Debug().
		Str("user_id", p.UserID).
		Str("condition", p.Condition).
		Msg("profile saved")

	return nil
}

// Get retrieves the profile for a user, returning ErrProfileNotFound when
// the user has never saved one.
func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.Get(ctx, userID)
}
