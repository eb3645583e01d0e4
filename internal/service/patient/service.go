package patient

import (
	"context"
	"errors"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

// Register creates a patient unless one with the same name and mobile number
// already exists. Sharing just one of the two fields is allowed.
func (s *Service) Register(ctx context.Context, req *model.RegisterPatientRequest) (int64, error) {
	existing, err := s.repo.FindByNameAndMobile(ctx, req.Name, req.Mobile)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, apperrors.Store(err)
	}
	if existing != nil {
		return 0, apperrors.Conflict("patient with this name and mobile number already exists")
	}

	patient := &model.Patient{
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Mobile: req.Mobile,
	}
	if req.Address != "" {
		patient.Address = &req.Address
	}
	if req.ProblemDetails != "" {
		patient.ProblemDetails = &req.ProblemDetails
	}

	id, err := s.repo.Create(ctx, patient)
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return id, nil
}
