package booking

import (
	"context"
	"errors"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

// Service orchestrates the booking workflow: resolve the patient by mobile,
// resolve the doctor, snapshot the doctor's timing and persist the
// appointment. The insert is the only write and runs last, so a failure on
// any step leaves no partial state.
type Service struct {
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
}

func NewService(
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	appointments repository.AppointmentRepository,
) *Service {
	return &Service{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
	}
}

// BookAppointment books an appointment for the patient registered under the
// given mobile number. The workflow does not auto-register unknown patients;
// registration is a deliberate separate step.
func (s *Service) BookAppointment(ctx context.Context, req *model.BookAppointmentRequest) (*model.BookingResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	patient, err := s.patients.GetByMobile(ctx, req.PatientMobile)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient")
		}
		return nil, apperrors.Store(err)
	}

	doctor, err := s.doctors.Get(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, apperrors.Store(err)
	}

	appointment := &model.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: doctor.Timing,
	}

	id, err := s.appointments.Create(ctx, appointment)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	return &model.BookingResult{
		AppointmentID: id,
		DoctorTiming:  doctor.Timing,
	}, nil
}

// validateRequest runs before any store access.
func validateRequest(req *model.BookAppointmentRequest) error {
	if req.PatientMobile == "" {
		return apperrors.Validation("patient mobile is required")
	}
	if req.DoctorID == 0 {
		return apperrors.Validation("doctor id is required")
	}
	if req.AppointmentDate == "" {
		return apperrors.Validation("appointment date is required")
	}
	return nil
}
