package model

import "time"

type Medicine struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Manufacturer *string   `db:"manufacturer" json:"manufacturer,omitempty"`
	Stock        int       `db:"stock" json:"stock"`
	Price        float64   `db:"price" json:"price"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Stock and price are pointers so a zero value still satisfies "required".
type MedicineRequest struct {
	Name         string   `json:"name" binding:"required"`
	Manufacturer string   `json:"manufacturer"`
	Stock        *int     `json:"stock" binding:"required,gte=0"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
}
