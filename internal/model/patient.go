package model

import "time"

type Patient struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Age            int       `db:"age" json:"age"`
	Gender         string    `db:"gender" json:"gender"`
	Mobile         string    `db:"mobile" json:"mobile"`
	Address        *string   `db:"address" json:"address,omitempty"`
	ProblemDetails *string   `db:"problem_details" json:"problem_details,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type RegisterPatientRequest struct {
	Name           string `json:"name" binding:"required"`
	Age            int    `json:"age" binding:"required,gt=0"`
	Gender         string `json:"gender" binding:"required"`
	Mobile         string `json:"mobile" binding:"required,mobile"`
	Address        string `json:"address"`
	ProblemDetails string `json:"problem_details"`
}
