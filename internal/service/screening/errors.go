package screening

import "errors"

var (
	ErrUnknownInstrument = errors.New("unknown screening instrument")
	ErrInvalidAnswers    = errors.New("answers do not match the instrument")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrNotFound          = errors.New("screening result not found")
)
