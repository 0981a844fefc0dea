package users

import (
	"context"

	"github.com/cghdev/userdesk/internal/logging"
	"github.com/cghdev/userdesk/internal/server/models"
)

// Service implements the user operations exposed over HTTP. It keeps no
// state of its own and delegates persistence to a Repository.
type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, u *models.User) (*models.User, error) {
	saved, err := s.repo.Create(ctx, u)
	if err != nil {
		s.logger.Error(ctx, "create user failed", "error", err)
		return nil, err
	}
	s.logger.Info(ctx, "user created", "id", saved.ID)
	return saved, nil
}

// Update replaces an existing record. An update for an id with no record
// fails with common.ErrNotFound instead of inserting.
func (s *Service) Update(ctx context.Context, u *models.User) (*models.User, error) {
	if _, err := s.repo.FindByID(ctx, u.ID); err != nil {
		return nil, err
	}
	saved, err := s.repo.Update(ctx, u)
	if err != nil {
		s.logger.Error(ctx, "update user failed", "id", u.ID, "error", err)
		return nil, err
	}
	s.logger.Info(ctx, "user updated", "id", saved.ID)
	return saved, nil
}

// Delete reports whether a record was actually removed.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "delete user failed", "id", id, "error", err)
		return false, err
	}
	if !deleted {
		s.logger.Debug(ctx, "delete skipped, no such user", "id", id)
	}
	return deleted, nil
}
