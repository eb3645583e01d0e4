package auth

import (
	"context"
	"errors"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
	"github.com/jwalitptl/clinic-api/pkg/security"
)

// Service performs the stateless admin credential check. No token or session
// is issued; every login call stands alone.
type Service struct {
	repo   repository.AdminRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.AdminRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Login verifies the credential pair. Unknown usernames and wrong passwords
// are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) error {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.Unauthorized("invalid credentials")
		}
		return apperrors.Store(err)
	}

	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return apperrors.Unauthorized("invalid credentials")
	}

	return nil
}

// EnsureSeedAdmin creates the configured admin credential on first run, when
// the admins table is empty. The password is stored as a bcrypt hash.
func (s *Service) EnsureSeedAdmin(ctx context.Context, username, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, &model.Admin{
		Username:     username,
		PasswordHash: hash,
	})
	return err
}
