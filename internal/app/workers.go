package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	entpatient "github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	entalert "github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	entref "github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
	entuser "github.com/iwantdrugsxd/mind-ease/internal/repo/user"
	"github.com/iwantdrugsxd/mind-ease/internal/service/notification"
	"github.com/iwantdrugsxd/mind-ease/pkg/email"
	svcsms "github.com/iwantdrugsxd/mind-ease/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	Mailer   *email.Client
	SMS      *svcsms.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAlertWorker(p.NC, p.DB, p.NotifSvc, p.Mailer, p.SMS)
			startReferralWorker(p.NC, p.DB, p.NotifSvc, p.Mailer, p.SMS)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// alert_worker
// ---------------------------------------------------------------------------

// startAlertWorker fans new screening and crisis alerts out to every
// active clinician, in-app and by email. Crisis alerts additionally
// text the patient's emergency contact when one is on file.
func startAlertWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, mailer *email.Client, smsCli *svcsms.Client) {
	_, err := nc.Subscribe("mindease.alert.created.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		alertIDStr := parts[3]
		alertID, err := uuid.Parse(alertIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		alert, err := db.ScreeningAlert.Query().
			Where(entalert.ID(alertID)).
			Only(ctx)
		if err != nil {
			slog.Warn("alert_worker: alert not found", "id", alertIDStr, "err", err)
			return
		}

		clinicians, err := clinicianUsers(ctx, db)
		if err != nil {
			slog.Warn("alert_worker: clinician lookup failed", "err", err)
			return
		}

		notifType := "screening_alert"
		title := "Screening alert"
		if alert.AlertType == entalert.AlertTypeCrisis {
			notifType = "crisis_alert"
			title = "Crisis alert"
		}

		patientName := patientDisplayName(ctx, db, alert.PatientID)

		for _, cl := range clinicians {
			_, err := notifSvc.Create(ctx, notification.CreateRequest{
				UserID: cl.ID,
				Type:   notifType,
				Title:  title,
				Data: map[string]any{
					"alert_id":   alert.ID.String(),
					"patient_id": alert.PatientID.String(),
					"alert_type": string(alert.AlertType),
				},
			})
			if err != nil {
				slog.Warn("alert_worker: create notification failed", "user_id", cl.ID, "err", err)
			}

			m := email.BuildScreeningAlertEmail(email.AlertEmailData{
				Email:       cl.Email,
				PatientName: patientName,
				AlertType:   string(alert.AlertType),
				Message:     alert.Message,
			})
			if err := mailer.Send(ctx, m); err != nil && !errors.Is(err, email.ErrDisabled{}) {
				slog.Warn("alert_worker: send email failed", "to", cl.Email, "err", err)
			}
		}

		if alert.AlertType == entalert.AlertTypeCrisis && smsCli.IsEnabled() {
			pat, err := db.Patient.Query().
				Where(entpatient.ID(alert.PatientID)).
				Only(ctx)
			if err != nil {
				slog.Warn("alert_worker: patient not found", "id", alert.PatientID, "err", err)
				return
			}
			if pat.EmergencyPhone == nil || *pat.EmergencyPhone == "" {
				return
			}
			body := "MindEase: someone who listed you as their emergency contact may need support right now. Please check in with them. If they are in immediate danger, call 911."
			if err := smsCli.Send(ctx, *pat.EmergencyPhone, body); err != nil {
				slog.Warn("alert_worker: send SMS failed", "patient_id", alert.PatientID, "err", err)
			}
		}
	})
	if err != nil {
		slog.Error("alert_worker: subscribe alert.created failed", "err", err)
	}

	slog.Info("alert_worker: started")
}

// ---------------------------------------------------------------------------
// referral_worker
// ---------------------------------------------------------------------------

// startReferralWorker notifies clinicians of new teleconsult referrals.
// Urgent referrals additionally text the patient so they know a
// clinician will reach out.
func startReferralWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, mailer *email.Client, smsCli *svcsms.Client) {
	_, err := nc.Subscribe("mindease.referral.created.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		referralIDStr := parts[3]
		referralID, err := uuid.Parse(referralIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		ref, err := db.TeleconsultReferral.Query().
			Where(entref.ID(referralID)).
			Only(ctx)
		if err != nil {
			slog.Warn("referral_worker: referral not found", "id", referralIDStr, "err", err)
			return
		}

		clinicians, err := clinicianUsers(ctx, db)
		if err != nil {
			slog.Warn("referral_worker: clinician lookup failed", "err", err)
			return
		}

		patientName := patientDisplayName(ctx, db, ref.PatientID)

		for _, cl := range clinicians {
			_, err := notifSvc.Create(ctx, notification.CreateRequest{
				UserID: cl.ID,
				Type:   "teleconsult_referral",
				Title:  "New teleconsult referral",
				Data: map[string]any{
					"referral_id": ref.ID.String(),
					"patient_id":  ref.PatientID.String(),
					"priority":    string(ref.Priority),
				},
			})
			if err != nil {
				slog.Warn("referral_worker: create notification failed", "user_id", cl.ID, "err", err)
			}

			m := email.BuildReferralEmail(email.ReferralEmailData{
				Email:       cl.Email,
				PatientName: patientName,
				Priority:    string(ref.Priority),
				Reason:      ref.Reason,
			})
			if err := mailer.Send(ctx, m); err != nil && !errors.Is(err, email.ErrDisabled{}) {
				slog.Warn("referral_worker: send email failed", "to", cl.Email, "err", err)
			}
		}

		if ref.Priority == entref.PriorityUrgent && smsCli.IsEnabled() {
			pat, err := db.Patient.Query().
				Where(entpatient.ID(ref.PatientID)).
				Only(ctx)
			if err != nil {
				slog.Warn("referral_worker: patient not found", "id", ref.PatientID, "err", err)
				return
			}
			if pat.PhoneNumber == nil || *pat.PhoneNumber == "" {
				return
			}
			body := "MindEase: your recent check-in suggests you should speak with a clinician soon. A member of our care team will contact you shortly."
			if err := smsCli.Send(ctx, *pat.PhoneNumber, body); err != nil {
				slog.Warn("referral_worker: send SMS failed", "patient_id", ref.PatientID, "err", err)
			}
		}
	})
	if err != nil {
		slog.Error("referral_worker: subscribe referral.created failed", "err", err)
	}

	slog.Info("referral_worker: started")
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func clinicianUsers(ctx context.Context, db *repo.Client) ([]*repo.User, error) {
	return db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleClinician),
			entuser.StatusEQ(entuser.StatusACTIVE),
			entuser.DeletedAtIsNil(),
		).
		All(ctx)
}

func patientDisplayName(ctx context.Context, db *repo.Client, patientID uuid.UUID) string {
	pat, err := db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Only(ctx)
	if err != nil {
		return ""
	}
	usr, err := db.User.Query().
		Where(entuser.ID(pat.UserID)).
		Only(ctx)
	if err != nil {
		return ""
	}
	if usr.FullName != nil && *usr.FullName != "" {
		return *usr.FullName
	}
	return usr.Email
}
