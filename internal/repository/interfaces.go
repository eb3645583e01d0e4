package repository

import (
	"context"
	"errors"

	"github.com/jwalitptl/clinic-api/internal/model"
)

// ErrNotFound is returned when a lookup matches no row. Services translate it
// into their own taxonomy; store failures are wrapped separately.
var ErrNotFound = errors.New("not found")

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (int64, error)
		GetByMobile(ctx context.Context, mobile string) (*model.Patient, error)
		FindByNameAndMobile(ctx context.Context, name, mobile string) (*model.Patient, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) (int64, error)
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.DoctorSummary, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) (int64, error)
	}

	MedicineRepository interface {
		Create(ctx context.Context, medicine *model.Medicine) (int64, error)
		List(ctx context.Context) ([]*model.Medicine, error)
		Update(ctx context.Context, medicine *model.Medicine) error
		Delete(ctx context.Context, id int64) error
	}

	AdminRepository interface {
		Create(ctx context.Context, admin *model.Admin) (int64, error)
		GetByUsername(ctx context.Context, username string) (*model.Admin, error)
		Count(ctx context.Context) (int64, error)
	}
)
