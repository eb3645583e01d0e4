package model

import "time"

// Appointment references a patient and a doctor. AppointmentTime is the
// doctor's timing captured at booking, not a live reference: later changes to
// the doctor's schedule leave existing appointments untouched.
type Appointment struct {
	ID              int64     `db:"id" json:"id"`
	PatientID       int64     `db:"patient_id" json:"patient_id"`
	DoctorID        int64     `db:"doctor_id" json:"doctor_id"`
	AppointmentDate string    `db:"appointment_date" json:"appointment_date"`
	AppointmentTime string    `db:"appointment_time" json:"appointment_time"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type BookAppointmentRequest struct {
	PatientMobile   string `json:"patient_mobile" binding:"required,mobile"`
	DoctorID        int64  `json:"doctor_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
}

// BookingResult is returned to the caller after a successful booking.
type BookingResult struct {
	AppointmentID int64  `json:"appointmentId"`
	DoctorTiming  string `json:"doctorTiming"`
}
