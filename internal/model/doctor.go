package model

import "time"

type Doctor struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Qualification  string    `db:"qualification" json:"qualification"`
	RegistrationNo *string   `db:"registration_no" json:"registration_no,omitempty"`
	Timing         string    `db:"timing" json:"timing"`
	Mobile         *string   `db:"mobile" json:"mobile,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// DoctorSummary is the public directory projection of a doctor.
type DoctorSummary struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Qualification string `db:"qualification" json:"qualification"`
	Timing        string `db:"timing" json:"timing"`
}

type RegisterDoctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Qualification  string `json:"qualification" binding:"required"`
	RegistrationNo string `json:"registration_no"`
	Timing         string `json:"timing" binding:"required"`
	Mobile         string `json:"mobile" binding:"omitempty,mobile"`
}
