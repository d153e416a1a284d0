// Package profile manages stored birth profiles and the charts derived from
// them.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	apperrors "github.com/yanqian/cosmic-calendar/pkg/errors"
)

// Service exposes profile onboarding and lookup.
type Service interface {
	Create(ctx context.Context, req Request) (Profile, error)
	Get(ctx context.Context, id string) (Profile, error)
	Chart(ctx context.Context, id string) (ephemeris.BirthChart, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the profile domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "profile.service"),
		now:    time.Now,
	}
}

func (s *service) Create(ctx context.Context, req Request) (Profile, error) {
	birth, err := Parse(req)
	if errors.Is(err, ErrUnknownTimezone) {
		s.logger.Warn("profile timezone unknown, using UTC", "timezone", req.Timezone)
	} else if err != nil {
		return Profile{}, err
	}

	p := Profile{
		ID:        uuid.NewString(),
		Birth:     birth,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeStorage, "failed to store profile", err)
	}
	s.logger.Info("profile created", "id", p.ID, "hasBirthTime", birth.HasBirthTime())
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "profile id must be a UUID", err)
	}
	p, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load profile", err)
	}
	if !found {
		return Profile{}, apperrors.Wrap(apperrors.CodeNotFound, "profile not found", nil)
	}
	return p, nil
}

func (s *service) Chart(ctx context.Context, id string) (ephemeris.BirthChart, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return ephemeris.BirthChart{}, err
	}
	return p.Chart(), nil
}
