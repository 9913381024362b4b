package clinician

import "errors"

var (
	ErrAlertNotFound    = errors.New("alert not found")
	ErrReferralNotFound = errors.New("referral not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrInvalidStatus    = errors.New("invalid referral status")
)
