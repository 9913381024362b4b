package screening

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

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

type SubmitRequest struct {
	PatientID  uuid.UUID
	Instrument string // phq9 | gad7
	Answers    []int
}

// SubmitResponse carries the stored result plus the escalation decision.
// Degraded is set when the trend history could not be read and the engine
// fell back to evaluating without it.
type SubmitResponse struct {
	Result            *repo.ScreeningResult
	Action            triage.Action
	RecommendedModule string
	Degraded          bool
}

type HistoryRequest struct {
	PatientID  uuid.UUID
	Instrument string // optional filter
	Since      *time.Time
	Page       int
	PerPage    int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit scores a questionnaire, persists the result and applies the
	// escalation decision (referral, alert or self-care recommendation).
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)

	Get(ctx context.Context, resultID uuid.UUID) (*repo.ScreeningResult, error)
	History(ctx context.Context, req HistoryRequest) ([]*repo.ScreeningResult, error)

	// Reevaluate re-runs the escalation rules for a stored result. The
	// unique screening_result_id indexes make this safe to call repeatedly:
	// the decision is recomputed but records are never duplicated.
	Reevaluate(ctx context.Context, resultID uuid.UUID) (*triage.Action, error)

	// LatestAction returns the escalation decision of the patient's most
	// recent screening, or nil when the patient has never screened.
	LatestAction(ctx context.Context, patientID uuid.UUID) (*triage.Action, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type screeningService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &screeningService{db: db, nc: nc}
}

func (s *screeningService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	inst := triage.Instrument(req.Instrument)
	if !inst.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, req.Instrument)
	}

	total, band, err := triage.Score(inst, req.Answers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	now := time.Now().UTC()
	current := triage.Result{
		PatientID:  req.PatientID,
		Instrument: inst,
		Answers:    req.Answers,
		TotalScore: total,
		Severity:   band,
		CreatedAt:  now,
	}

	// A failed history read must not block the screening itself; without
	// priors the trend rule cannot fire and the decision degrades to the
	// threshold rules plus self-care.
	degraded := false
	prior, err := s.priorResults(ctx, req.PatientID, inst, now)
	if err != nil {
		slog.Warn("screening: history lookup failed, evaluating without trend data",
			"patient_id", req.PatientID, "err", err)
		prior = nil
		degraded = true
	}

	action := triage.Evaluate(current, prior)
	risk := triage.RiskFor(inst, total, current.SuicidalItem())

	create := s.db.ScreeningResult.Create().
		SetPatientID(req.PatientID).
		SetInstrument(entsr.Instrument(inst)).
		SetAnswers(req.Answers).
		SetTotalScore(total).
		SetSeverityBand(entsr.SeverityBand(band)).
		SetRiskLevel(entsr.RiskLevel(risk)).
		SetTriageAction(entsr.TriageAction(action.Type))
	if action.Type == triage.ActionRecommendSelfCare {
		create = create.SetRecommendedModule(action.ModuleID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create screening result: %w", err)
	}

	if err := s.applyAction(ctx, row, action); err != nil {
		return nil, err
	}

	resp := &SubmitResponse{
		Result:   row,
		Action:   action,
		Degraded: degraded,
	}
	if action.Type == triage.ActionRecommendSelfCare {
		resp.RecommendedModule = action.ModuleID
	}
	return resp, nil
}

func (s *screeningService) Get(ctx context.Context, resultID uuid.UUID) (*repo.ScreeningResult, error) {
	row, err := s.db.ScreeningResult.Get(ctx, resultID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get screening result: %w", err)
	}
	return row, nil
}

func (s *screeningService) History(ctx context.Context, req HistoryRequest) ([]*repo.ScreeningResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.ScreeningResult.Query().
		Where(entsr.PatientID(req.PatientID))
	if req.Instrument != "" {
		inst := triage.Instrument(req.Instrument)
		if !inst.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, req.Instrument)
		}
		q = q.Where(entsr.InstrumentEQ(entsr.Instrument(inst)))
	}
	if req.Since != nil {
		q = q.Where(entsr.CreatedAtGTE(*req.Since))
	}

	rows, err := q.
		Order(entsr.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list screening results: %w", err)
	}
	return rows, nil
}

func (s *screeningService) Reevaluate(ctx context.Context, resultID uuid.UUID) (*triage.Action, error) {
	row, err := s.Get(ctx, resultID)
	if err != nil {
		return nil, err
	}

	current := toTriageResult(row)
	prior, err := s.priorResults(ctx, row.PatientID, current.Instrument, row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("load prior results: %w", err)
	}
	// The stored row itself comes back from the window query; Evaluate
	// ignores it only if we drop it here.
	filtered := prior[:0]
	for _, p := range prior {
		if p.ID != row.ID {
			filtered = append(filtered, p)
		}
	}

	action := triage.Evaluate(current, filtered)
	if err := s.applyAction(ctx, row, action); err != nil {
		return nil, err
	}
	return &action, nil
}

func (s *screeningService) LatestAction(ctx context.Context, patientID uuid.UUID) (*triage.Action, error) {
	row, err := s.db.ScreeningResult.Query().
		Where(entsr.PatientID(patientID)).
		Order(entsr.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest screening: %w", err)
	}

	action := &triage.Action{
		Type:     triage.ActionType(row.TriageAction),
		ModuleID: row.RecommendedModule,
	}
	return action, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// priorResults loads the patient's earlier screenings of the same
// instrument inside the trend window ending at `until`.
func (s *screeningService) priorResults(ctx context.Context, patientID uuid.UUID, inst triage.Instrument, until time.Time) ([]triage.Result, error) {
	windowStart := until.AddDate(0, 0, -14)

	rows, err := s.db.ScreeningResult.Query().
		Where(
			entsr.PatientID(patientID),
			entsr.InstrumentEQ(entsr.Instrument(inst)),
			entsr.CreatedAtGTE(windowStart),
			entsr.CreatedAtLTE(until),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]triage.Result, 0, len(rows))
	for _, r := range rows {
		out = append(out, toTriageResult(r))
	}
	return out, nil
}

// applyAction persists the side effect of an escalation decision. Both
// writes are keyed by a unique index on screening_result_id, so calling
// this twice for the same screening is a no-op the second time.
func (s *screeningService) applyAction(ctx context.Context, row *repo.ScreeningResult, action triage.Action) error {
	switch action.Type {
	case triage.ActionTriggerReferral:
		return s.ensureReferral(ctx, row, action)
	case triage.ActionClinicianAlert:
		return s.ensureAlert(ctx, row, action)
	default:
		return nil
	}
}

func (s *screeningService) ensureReferral(ctx context.Context, row *repo.ScreeningResult, action triage.Action) error {
	exists, err := s.db.TeleconsultReferral.Query().
		Where(entref.ScreeningResultID(row.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check referral: %w", err)
	}
	if exists {
		return nil
	}

	ref, err := s.db.TeleconsultReferral.Create().
		SetPatientID(row.PatientID).
		SetScreeningResultID(row.ID).
		SetReason(action.Reason).
		SetPriority(entref.Priority(action.Priority)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil // lost a race with a concurrent evaluation
		}
		return fmt.Errorf("create referral: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("mindease.referral.created.%s", ref.ID.String())
		_ = s.nc.Publish(subject, []byte(row.PatientID.String()))
	}
	return nil
}

func (s *screeningService) ensureAlert(ctx context.Context, row *repo.ScreeningResult, action triage.Action) error {
	exists, err := s.db.ScreeningAlert.Query().
		Where(entalert.ScreeningResultID(row.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check alert: %w", err)
	}
	if exists {
		return nil
	}

	msg := fmt.Sprintf("%s score rose by %d points within %d days",
		triage.Instrument(row.Instrument).Label(), action.DeltaScore, action.WindowDays)

	alert, err := s.db.ScreeningAlert.Create().
		SetPatientID(row.PatientID).
		SetScreeningResultID(row.ID).
		SetAlertType(entalert.AlertTypeScoreIncrease).
		SetMessage(msg).
		SetDeltaScore(action.DeltaScore).
		SetWindowDays(action.WindowDays).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("create alert: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("mindease.alert.created.%s", alert.ID.String())
		_ = s.nc.Publish(subject, []byte(row.PatientID.String()))
	}
	return nil
}

func toTriageResult(r *repo.ScreeningResult) triage.Result {
	return triage.Result{
		ID:         r.ID,
		PatientID:  r.PatientID,
		Instrument: triage.Instrument(r.Instrument),
		Answers:    r.Answers,
		TotalScore: r.TotalScore,
		Severity:   triage.SeverityBand(r.SeverityBand),
		CreatedAt:  r.CreatedAt,
	}
}
