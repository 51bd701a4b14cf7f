// Package user registers users and reads their profiles.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/domain/user"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/eventbus"
	"github.com/amirasaad/networth/pkg/repository"
	userrepo "github.com/amirasaad/networth/pkg/repository/user"
	"github.com/amirasaad/networth/pkg/utils"
	"github.com/google/uuid"
)

// Service provides user registration and profile operations.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a new Service. bus may be nil.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		bus:    bus,
		logger: logger.With("service", "user"),
	}
}

// Register creates a user. The email is stored lower-cased and must be unused.
func (s *Service) Register(
	ctx context.Context,
	email, password, displayName string,
) (*user.User, error) {
	log := s.logger.With("op", "Register")
	log.Debug("Register called", "email", email)
	u, err := user.NewUser(email, password, displayName)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		taken, err := repo.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if taken {
			return user.ErrEmailTaken
		}
		return repo.Create(ctx, &dto.UserCreate{
			ID:          u.ID,
			Email:       u.Email,
			Password:    u.Password,
			DisplayName: u.DisplayName,
		})
	})
	if errors.Is(err, domain.ErrConflict) {
		err = user.ErrEmailTaken
	}
	if err != nil {
		log.Error("Register failed", "email", u.Email, "error", err)
		return nil, err
	}
	log.Info("user registered", "userID", u.ID)
	if s.bus != nil {
		if err := s.bus.Emit(ctx, events.UserRegistered{Meta: events.NewMeta(u.ID), Email: u.Email}); err != nil {
			log.Warn("failed to emit event", "error", err)
		}
	}
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.UserRead, error) {
	repo, err := repository.Get[userrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	u, err := repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, user.ErrUserNotFound
	}
	return u, err
}

// UpdateProfile changes the display name and, when password is non-empty,
// the password.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	displayName, password string,
) (*dto.UserRead, error) {
	log := s.logger.With("op", "UpdateProfile", "userID", userID)
	update := &dto.UserUpdate{DisplayName: &displayName}
	if password != "" {
		if len(password) < 6 || len(password) > 72 {
			return nil, user.ErrWeakPassword
		}
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		update.Password = &hashed
	}
	var updated *dto.UserRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, userID, update); err != nil {
			return err
		}
		updated, err = repo.Get(ctx, userID)
		return err
	})
	if errors.Is(err, domain.ErrNotFound) {
		err = user.ErrUserNotFound
	}
	if err != nil {
		log.Error("UpdateProfile failed", "error", err)
		return nil, err
	}
	log.Info("profile updated")
	return updated, nil
}
