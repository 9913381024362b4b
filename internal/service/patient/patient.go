package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	entpatient "github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
)

// defaultPhoneRegion is used when a phone number arrives without a
// country prefix.
const defaultPhoneRegion = "US"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateProfileRequest struct {
	DateOfBirth      *time.Time
	PhoneNumber      *string
	EmergencyContact *string
	EmergencyPhone   *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error)
	UpdateProfile(ctx context.Context, patientID uuid.UUID, req UpdateProfileRequest) (*repo.Patient, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) Get(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient by user: %w", err)
	}
	return p, nil
}

func (s *patientService) UpdateProfile(ctx context.Context, patientID uuid.UUID, req UpdateProfileRequest) (*repo.Patient, error) {
	p, err := s.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	u := p.Update()
	if req.DateOfBirth != nil {
		if !req.DateOfBirth.Before(time.Now()) {
			return nil, ErrInvalidDOB
		}
		u = u.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.PhoneNumber != nil {
		e164, err := normalizePhone(*req.PhoneNumber)
		if err != nil {
			return nil, err
		}
		u = u.SetPhoneNumber(e164)
	}
	if req.EmergencyContact != nil {
		u = u.SetEmergencyContact(*req.EmergencyContact)
	}
	if req.EmergencyPhone != nil {
		e164, err := normalizePhone(*req.EmergencyPhone)
		if err != nil {
			return nil, err
		}
		u = u.SetEmergencyPhone(e164)
	}

	p, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// normalizePhone validates a phone number and returns it in E.164 form.
func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
