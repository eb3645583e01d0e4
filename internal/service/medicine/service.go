package medicine

import (
	"context"
	"errors"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

type Service struct {
	repo repository.MedicineRepository
}

func NewService(repo repository.MedicineRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddMedicine(ctx context.Context, req *model.MedicineRequest) (int64, error) {
	id, err := s.repo.Create(ctx, medicineFromRequest(0, req))
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return id, nil
}

func (s *Service) ListMedicines(ctx context.Context) ([]*model.Medicine, error) {
	medicines, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return medicines, nil
}

// UpdateMedicine is a full replace of name, manufacturer, stock and price.
func (s *Service) UpdateMedicine(ctx context.Context, id int64, req *model.MedicineRequest) error {
	if err := s.repo.Update(ctx, medicineFromRequest(id, req)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("medicine")
		}
		return apperrors.Store(err)
	}
	return nil
}

func (s *Service) DeleteMedicine(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("medicine")
		}
		return apperrors.Store(err)
	}
	return nil
}

func medicineFromRequest(id int64, req *model.MedicineRequest) *model.Medicine {
	medicine := &model.Medicine{
		ID:    id,
		Name:  req.Name,
		Stock: *req.Stock,
		Price: *req.Price,
	}
	if req.Manufacturer != "" {
		medicine.Manufacturer = &req.Manufacturer
	}
	return medicine
}
