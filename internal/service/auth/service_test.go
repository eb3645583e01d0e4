package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
	"github.com/jwalitptl/clinic-api/pkg/security"
)

type fakeAdminRepo struct {
	admins []*model.Admin
}

func (f *fakeAdminRepo) Create(ctx context.Context, a *model.Admin) (int64, error) {
	a.ID = int64(len(f.admins) + 1)
	f.admins = append(f.admins, a)
	return a.ID, nil
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

func newTestService(t *testing.T) (*Service, *fakeAdminRepo) {
	t.Helper()
	repo := &fakeAdminRepo{}
	svc := NewService(repo, security.NewBcryptHasher(bcrypt.MinCost))
	require.NoError(t, svc.EnsureSeedAdmin(context.Background(), "admin", "admin123"))
	return svc, repo
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	assert.NoError(t, svc.Login(context.Background(), "admin", "admin123"))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.Login(context.Background(), "admin", "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthorized))
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.Login(context.Background(), "root", "admin123")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthorized))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	require.NoError(t, svc.EnsureSeedAdmin(context.Background(), "admin", "other"))
	assert.Len(t, repo.admins, 1)
}

func TestPasswordIsStoredHashed(t *testing.T) {
	_, repo := newTestService(t)
	require.Len(t, repo.admins, 1)
	assert.NotEqual(t, "admin123", repo.admins[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.admins[0].PasswordHash), []byte("admin123")))
}
