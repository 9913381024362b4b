package clinician

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	entpatient "github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	entalert "github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	entsr "github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	entref "github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
	"github.com/iwantdrugsxd/mind-ease/internal/triage"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListAlertsRequest struct {
	UnresolvedOnly bool
	PatientID      *uuid.UUID
	Page           int
	PerPage        int
}

type ListReferralsRequest struct {
	Status    string // optional filter
	PatientID *uuid.UUID
	Page      int
	PerPage   int
}

type UpdateReferralRequest struct {
	Status         *string
	ScheduledDate  *time.Time
	ClinicianNotes *string
}

// TrendPoint is one screening on a patient's score-over-time chart.
type TrendPoint struct {
	ResultID   uuid.UUID `json:"result_id"`
	Instrument string    `json:"instrument"`
	TotalScore int       `json:"total_score"`
	Severity   string    `json:"severity"`
	RecordedAt time.Time `json:"recorded_at"`
}

// PatientOverview is the clinician dashboard card for one patient.
type PatientOverview struct {
	Patient          *repo.Patient           `json:"patient"`
	LatestScreenings []*repo.ScreeningResult `json:"latest_screenings"`
	OpenAlerts       int                     `json:"open_alerts"`
	PendingReferrals int                     `json:"pending_referrals"`
	Trend            []TrendPoint            `json:"trend"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	ListAlerts(ctx context.Context, req ListAlertsRequest) ([]*repo.ScreeningAlert, error)
	ResolveAlert(ctx context.Context, alertID uuid.UUID) (*repo.ScreeningAlert, error)

	ListReferrals(ctx context.Context, req ListReferralsRequest) ([]*repo.TeleconsultReferral, error)
	UpdateReferral(ctx context.Context, referralID uuid.UUID, req UpdateReferralRequest) (*repo.TeleconsultReferral, error)

	PatientOverview(ctx context.Context, patientID uuid.UUID) (*PatientOverview, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clinicianService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clinicianService{db: db}
}

func (s *clinicianService) ListAlerts(ctx context.Context, req ListAlertsRequest) ([]*repo.ScreeningAlert, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.ScreeningAlert.Query()
	if req.UnresolvedOnly {
		q = q.Where(entalert.IsResolved(false))
	}
	if req.PatientID != nil {
		q = q.Where(entalert.PatientID(*req.PatientID))
	}

	rows, err := q.
		Order(entalert.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return rows, nil
}

func (s *clinicianService) ResolveAlert(ctx context.Context, alertID uuid.UUID) (*repo.ScreeningAlert, error) {
	alert, err := s.db.ScreeningAlert.Get(ctx, alertID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	if alert.IsResolved {
		return alert, nil
	}

	alert, err = alert.Update().
		SetIsResolved(true).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve alert: %w", err)
	}
	return alert, nil
}

func (s *clinicianService) ListReferrals(ctx context.Context, req ListReferralsRequest) ([]*repo.TeleconsultReferral, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.TeleconsultReferral.Query()
	if req.Status != "" {
		if !validStatus(req.Status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
		}
		q = q.Where(entref.StatusEQ(entref.Status(req.Status)))
	}
	if req.PatientID != nil {
		q = q.Where(entref.PatientID(*req.PatientID))
	}

	rows, err := q.
		Order(entref.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	return rows, nil
}

func (s *clinicianService) UpdateReferral(ctx context.Context, referralID uuid.UUID, req UpdateReferralRequest) (*repo.TeleconsultReferral, error) {
	ref, err := s.db.TeleconsultReferral.Get(ctx, referralID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrReferralNotFound
		}
		return nil, fmt.Errorf("get referral: %w", err)
	}

	u := ref.Update()
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		u = u.SetStatus(entref.Status(*req.Status))
	}
	if req.ScheduledDate != nil {
		u = u.SetScheduledDate(*req.ScheduledDate)
	}
	if req.ClinicianNotes != nil {
		u = u.SetClinicianNotes(*req.ClinicianNotes)
	}

	ref, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update referral: %w", err)
	}
	return ref, nil
}

func (s *clinicianService) PatientOverview(ctx context.Context, patientID uuid.UUID) (*PatientOverview, error) {
	patient, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	latest, err := s.db.ScreeningResult.Query().
		Where(entsr.PatientID(patientID)).
		Order(entsr.ByCreatedAt(sql.OrderDesc())).
		Limit(10).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest screenings: %w", err)
	}

	openAlerts, err := s.db.ScreeningAlert.Query().
		Where(entalert.PatientID(patientID), entalert.IsResolved(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count alerts: %w", err)
	}

	pendingReferrals, err := s.db.TeleconsultReferral.Query().
		Where(entref.PatientID(patientID), entref.StatusEQ(entref.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count referrals: %w", err)
	}

	trendRows, err := s.db.ScreeningResult.Query().
		Where(
			entsr.PatientID(patientID),
			entsr.CreatedAtGTE(time.Now().UTC().AddDate(0, -3, 0)),
		).
		Order(entsr.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("trend query: %w", err)
	}

	trend := make([]TrendPoint, 0, len(trendRows))
	for _, r := range trendRows {
		trend = append(trend, TrendPoint{
			ResultID:   r.ID,
			Instrument: triage.Instrument(r.Instrument).Label(),
			TotalScore: r.TotalScore,
			Severity:   string(r.SeverityBand),
			RecordedAt: r.CreatedAt,
		})
	}

	return &PatientOverview{
		Patient:          patient,
		LatestScreenings: latest,
		OpenAlerts:       openAlerts,
		PendingReferrals: pendingReferrals,
		Trend:            trend,
	}, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validStatus(s string) bool {
	switch entref.Status(s) {
	case entref.StatusPending, entref.StatusScheduled, entref.StatusCompleted, entref.StatusCancelled:
		return true
	default:
		return false
	}
}
