package doctor

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

const listCacheKey = "doctors:list"

// Service serves the doctor directory. The list is read-heavy and changes
// only on registration, so it sits behind a short TTL cache that the
// register path invalidates.
type Service struct {
	repo  repository.DoctorRepository
	cache *cache.Cache
}

func NewService(repo repository.DoctorRepository, listTTL time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(listTTL, 2*listTTL),
	}
}

func (s *Service) Register(ctx context.Context, req *model.RegisterDoctorRequest) (int64, error) {
	doctor := &model.Doctor{
		Name:          req.Name,
		Qualification: req.Qualification,
		Timing:        req.Timing,
	}
	if req.RegistrationNo != "" {
		doctor.RegistrationNo = &req.RegistrationNo
	}
	if req.Mobile != "" {
		doctor.Mobile = &req.Mobile
	}

	id, err := s.repo.Create(ctx, doctor)
	if err != nil {
		return 0, apperrors.Store(err)
	}

	s.cache.Delete(listCacheKey)
	return id, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.DoctorSummary, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		return cached.([]*model.DoctorSummary), nil
	}

	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	s.cache.Set(listCacheKey, doctors, cache.DefaultExpiration)
	return doctors, nil
}
