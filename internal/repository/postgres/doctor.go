package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) (int64, error) {
	query := `
		INSERT INTO doctors (name, qualification, registration_no, timing, mobile, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	doctor.CreatedAt = time.Now()

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		doctor.Name,
		doctor.Qualification,
		doctor.RegistrationNo,
		doctor.Timing,
		doctor.Mobile,
		doctor.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create doctor: %w", err)
	}
	doctor.ID = id
	return id, nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE id = $1`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.DoctorSummary, error) {
	query := `SELECT id, name, qualification, timing FROM doctors ORDER BY id`
	doctors := []*model.DoctorSummary{}
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}
