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

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (int64, error) {
	query := `
		INSERT INTO patients (name, age, gender, mobile, address, problem_details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	patient.CreatedAt = time.Now()

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.Mobile,
		patient.Address,
		patient.ProblemDetails,
		patient.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}
	patient.ID = id
	return id, nil
}

func (r *patientRepository) GetByMobile(ctx context.Context, mobile string) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE mobile = $1 ORDER BY id LIMIT 1`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, mobile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient by mobile: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) FindByNameAndMobile(ctx context.Context, name, mobile string) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE name = $1 AND mobile = $2`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, name, mobile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find patient: %w", err)
	}
	return &patient, nil
}
