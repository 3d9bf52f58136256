package service

import (
	"errors"
	"net/http"
)

// Error is a terminal, named failure of the assessment core. Every validation
// failure surfaced past a service boundary is one of the sentinels below;
// anything else is treated as an internal failure by the controllers.
type Error struct {
	Code   string
	Status int
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

var (
	ErrAuthenticationFailure     = &Error{Code: "AUTHENTICATION_FAILURE", Status: http.StatusUnauthorized, Msg: "user identity could not be resolved"}
	ErrDefinitionLoadFailure     = &Error{Code: "DEFINITION_LOAD_FAILURE", Status: http.StatusInternalServerError, Msg: "failed to read assessment definition"}
	ErrInvalidDuration           = &Error{Code: "INVALID_DURATION", Status: http.StatusBadRequest, Msg: "assessment has no valid expected duration"}
	ErrRetryLimitExceeded        = &Error{Code: "RETRY_LIMIT_EXCEEDED", Status: http.StatusForbidden, Msg: "maximum retake attempts crossed"}
	ErrSubmissionExpired         = &Error{Code: "SUBMISSION_EXPIRED", Status: http.StatusForbidden, Msg: "assessment submission window has expired"}
	ErrWrongSectionDetails       = &Error{Code: "WRONG_SECTION_DETAILS", Status: http.StatusBadRequest, Msg: "submitted section details do not match the served question set"}
	ErrInvalidQuestion           = &Error{Code: "INVALID_QUESTION", Status: http.StatusBadRequest, Msg: "submitted question is not part of the served question set"}
	ErrUserDataNotPresent        = &Error{Code: "USER_ASSESSMENT_DATA_NOT_PRESENT", Status: http.StatusBadRequest, Msg: "no attempt data found for user"}
	ErrReadStartTimeFailed       = &Error{Code: "READ_START_TIME_FAILED", Status: http.StatusInternalServerError, Msg: "stored attempt has no start time"}
	ErrAttemptStateUnresolved    = &Error{Code: "ATTEMPT_STATE_UNRESOLVED", Status: http.StatusInternalServerError, Msg: "attempt record is in an unresolvable state"}
	ErrUnsupportedAssessmentType = &Error{Code: "UNSUPPORTED_ASSESSMENT_TYPE", Status: http.StatusBadRequest, Msg: "assessment type has no scoring rubric"}
	ErrPersistenceConflict       = &Error{Code: "PERSISTENCE_CONFLICT", Status: http.StatusConflict, Msg: "attempt record was modified concurrently"}
	ErrWriteFailure              = &Error{Code: "WRITE_FAILURE", Status: http.StatusInternalServerError, Msg: "failed to persist attempt data"}
	ErrInvalidRequest            = &Error{Code: "INVALID_REQUEST", Status: http.StatusBadRequest, Msg: "one or more mandatory fields are missing"}
	ErrTrackingNotFound          = &Error{Code: "TRACKING_NOT_FOUND", Status: http.StatusNotFound, Msg: "no tracking entry found for assessment"}
)

// AsServiceError unwraps err into the taxonomy, or nil when err is not one of
// the named failures.
func AsServiceError(err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return nil
}
