package email

import (
	"fmt"
)

// AlertEmailData contains the data needed for clinician alert emails.
type AlertEmailData struct {
	Email       string
	PatientName string
	AlertType   string
	Message     string
	AppName     string
}

// BuildScreeningAlertEmail creates a clinician notification for a new
// screening or crisis alert.
func BuildScreeningAlertEmail(data AlertEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "MindEase"
	}

	patientName := data.PatientName
	if patientName == "" {
		patientName = "A patient"
	}

	subject := fmt.Sprintf("[%s] Alert for %s", appName, patientName)
	if data.AlertType == "crisis" {
		subject = fmt.Sprintf("[%s] CRISIS alert for %s", appName, patientName)
	}

	textBody := fmt.Sprintf(`A new alert needs your review.

Patient: %s
Alert type: %s

%s

Please sign in to the %s clinician dashboard to review and resolve this alert.

The %s Team`,
		patientName, data.AlertType, data.Message, appName, appName)

	accent := "#d97706"
	if data.AlertType == "crisis" {
		accent = "#dc2626"
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: %s;">Alert for %s</h2>
    <p><strong>Alert type:</strong> %s</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-left: 4px solid %s; border-radius: 4px;">%s</p>
    <p>Please sign in to the %s clinician dashboard to review and resolve this alert.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">The %s Team</p>
</body>
</html>`,
		accent, patientName, data.AlertType, accent, data.Message, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ReferralEmailData contains the data needed for teleconsult referral emails.
type ReferralEmailData struct {
	Email       string
	PatientName string
	Priority    string
	Reason      string
	AppName     string
}

// BuildReferralEmail creates a clinician notification for a new
// teleconsult referral.
func BuildReferralEmail(data ReferralEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "MindEase"
	}

	patientName := data.PatientName
	if patientName == "" {
		patientName = "A patient"
	}

	subject := fmt.Sprintf("[%s] New teleconsult referral (%s priority)", appName, data.Priority)

	textBody := fmt.Sprintf(`A new teleconsult referral is waiting to be scheduled.

Patient: %s
Priority: %s
Reason: %s

Please sign in to the %s clinician dashboard to schedule the consultation.

The %s Team`,
		patientName, data.Priority, data.Reason, appName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">New teleconsult referral</h2>
    <p><strong>Patient:</strong> %s</p>
    <p><strong>Priority:</strong> %s</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 4px;">%s</p>
    <p>Please sign in to the %s clinician dashboard to schedule the consultation.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">The %s Team</p>
</body>
</html>`,
		patientName, data.Priority, data.Reason, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
