package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type medicineRepository struct {
	db *sqlx.DB
}

func NewMedicineRepository(db *sqlx.DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) (int64, error) {
	query := `
		INSERT INTO medicines (name, manufacturer, stock, price, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	medicine.CreatedAt = time.Now()

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		medicine.Name,
		medicine.Manufacturer,
		medicine.Stock,
		medicine.Price,
		medicine.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create medicine: %w", err)
	}
	medicine.ID = id
	return id, nil
}

func (r *medicineRepository) List(ctx context.Context) ([]*model.Medicine, error) {
	query := `SELECT * FROM medicines ORDER BY name ASC`
	medicines := []*model.Medicine{}
	if err := r.db.SelectContext(ctx, &medicines, query); err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	return medicines, nil
}

func (r *medicineRepository) Update(ctx context.Context, medicine *model.Medicine) error {
	query := `
		UPDATE medicines
		SET name = $1, manufacturer = $2, stock = $3, price = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		medicine.Name,
		medicine.Manufacturer,
		medicine.Stock,
		medicine.Price,
		medicine.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medicine: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *medicineRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM medicines WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
