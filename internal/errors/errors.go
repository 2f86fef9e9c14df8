package errors

import (
	"errors"
	"net/http"
)

// Not-found errors: a lookup by primary key found no row.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCaregiverNotFound is returned when a caregiver profile is not found.
	ErrCaregiverNotFound = errors.New("caregiver not found")
	// ErrMemberNotFound is returned when a member profile is not found.
	ErrMemberNotFound = errors.New("member not found")
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobApplicationNotFound is returned when a job application is not found.
	ErrJobApplicationNotFound = errors.New("job application not found")
	// ErrAppointmentNotFound is returned when an appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// Referenced-entity-missing errors: a foreign-key field does not resolve to an
// existing row. Distinct from the not-found family so they map to 400, not 404.
var (
	// ErrUserMissing is returned when a referenced user does not exist.
	ErrUserMissing = errors.New("referenced user does not exist")
	// ErrCaregiverMissing is returned when a referenced caregiver does not exist.
	ErrCaregiverMissing = errors.New("referenced caregiver does not exist")
	// ErrMemberMissing is returned when a referenced member does not exist.
	ErrMemberMissing = errors.New("referenced member does not exist")
	// ErrJobMissing is returned when a referenced job does not exist.
	ErrJobMissing = errors.New("referenced job does not exist")
)

// Already-exists errors: the attempted create would break a uniqueness or 1:1
// invariant.
var (
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrCaregiverExists is returned when the user already has a caregiver profile.
	ErrCaregiverExists = errors.New("this user is already a caregiver")
	// ErrMemberExists is returned when the user already has a member profile.
	ErrMemberExists = errors.New("this user is already a member")
	// ErrAddressExists is returned when the member already has an address.
	ErrAddressExists = errors.New("this member already has an address")
	// ErrJobApplicationExists is returned when the (caregiver, job) pair is taken.
	ErrJobApplicationExists = errors.New("this job application already exists")
)

// Delete-restriction errors: the row still has dependent children.
var (
	// ErrUserHasProfiles is returned when a user still owns a caregiver or member profile.
	ErrUserHasProfiles = errors.New("user still has a caregiver or member profile")
	// ErrCaregiverInUse is returned when a caregiver has applications or appointments.
	ErrCaregiverInUse = errors.New("caregiver has job applications or appointments")
	// ErrMemberInUse is returned when a member has jobs or appointments.
	ErrMemberInUse = errors.New("member has jobs or appointments")
	// ErrJobHasApplications is returned when a job still has applications.
	ErrJobHasApplications = errors.New("job has applications")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var httpByErr = map[error]*HTTPError{
	ErrUserNotFound:           {http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND"},
	ErrCaregiverNotFound:      {http.StatusNotFound, ErrCaregiverNotFound.Error(), "CAREGIVER_NOT_FOUND"},
	ErrMemberNotFound:         {http.StatusNotFound, ErrMemberNotFound.Error(), "MEMBER_NOT_FOUND"},
	ErrAddressNotFound:        {http.StatusNotFound, ErrAddressNotFound.Error(), "ADDRESS_NOT_FOUND"},
	ErrJobNotFound:            {http.StatusNotFound, ErrJobNotFound.Error(), "JOB_NOT_FOUND"},
	ErrJobApplicationNotFound: {http.StatusNotFound, ErrJobApplicationNotFound.Error(), "JOB_APPLICATION_NOT_FOUND"},
	ErrAppointmentNotFound:    {http.StatusNotFound, ErrAppointmentNotFound.Error(), "APPOINTMENT_NOT_FOUND"},

	ErrUserMissing:      {http.StatusBadRequest, ErrUserMissing.Error(), "USER_MISSING"},
	ErrCaregiverMissing: {http.StatusBadRequest, ErrCaregiverMissing.Error(), "CAREGIVER_MISSING"},
	ErrMemberMissing:    {http.StatusBadRequest, ErrMemberMissing.Error(), "MEMBER_MISSING"},
	ErrJobMissing:       {http.StatusBadRequest, ErrJobMissing.Error(), "JOB_MISSING"},

	ErrEmailTaken:           {http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN"},
	ErrCaregiverExists:      {http.StatusConflict, ErrCaregiverExists.Error(), "CAREGIVER_EXISTS"},
	ErrMemberExists:         {http.StatusConflict, ErrMemberExists.Error(), "MEMBER_EXISTS"},
	ErrAddressExists:        {http.StatusConflict, ErrAddressExists.Error(), "ADDRESS_EXISTS"},
	ErrJobApplicationExists: {http.StatusConflict, ErrJobApplicationExists.Error(), "JOB_APPLICATION_EXISTS"},

	ErrUserHasProfiles:    {http.StatusConflict, ErrUserHasProfiles.Error(), "USER_HAS_PROFILES"},
	ErrCaregiverInUse:     {http.StatusConflict, ErrCaregiverInUse.Error(), "CAREGIVER_IN_USE"},
	ErrMemberInUse:        {http.StatusConflict, ErrMemberInUse.Error(), "MEMBER_IN_USE"},
	ErrJobHasApplications: {http.StatusConflict, ErrJobHasApplications.Error(), "JOB_HAS_APPLICATIONS"},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 so storage failures never leak driver details to callers.
func MapErrorToHTTP(err error) *HTTPError {
	for domainErr, httpErr := range httpByErr {
		if errors.Is(err, domainErr) {
			return httpErr
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
