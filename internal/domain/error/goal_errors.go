// Package error defines domain-specific errors for the Goal Planner application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrEmptyDescription is returned when a goal is built without a description.
	ErrEmptyDescription = errors.New("Description cannot be empty")

	// ErrInvalidGoalType is returned when the goal type is not one of the supported tags.
	ErrInvalidGoalType = errors.New("Goal type must be 'economia' or 'compra'")

	// ErrInvalidPriority is returned when the priority is outside [1,5].
	ErrInvalidPriority = errors.New("Priority must be between 1 and 5")

	// ErrInvalidDateRange is returned when the end date is not after the start date.
	ErrInvalidDateRange = errors.New("End date must be after start date")

	// ErrInvalidImportance is returned when the importance is not baixa, média or alta.
	ErrInvalidImportance = errors.New("Importance must be 'baixa', 'média' or 'alta'")

	// ErrInvalidGoalStatus is returned when the status is not a known lifecycle state.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrInvalidInstallments is returned when the number of installments is not positive.
	ErrInvalidInstallments = errors.New("Number of installments must be greater than zero")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrInvalidStatusTransition is returned when a status action is not recognised.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrGoalNotFeasible is returned when a goal fails feasibility validation on creation.
	ErrGoalNotFeasible = errors.New("goal is not financially feasible")

	// ErrGoalConflict is returned when a goal conflicts with the user's active goals on creation.
	ErrGoalConflict = errors.New("goal conflicts with existing goals")

	// ErrInvalidProfile is returned when a financial profile cannot be built from the request.
	ErrInvalidProfile = errors.New("invalid financial profile")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound            GoalErrorCode = "GOL-010001"
	ErrCodeEmptyDescription        GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalType         GoalErrorCode = "GOL-010003"
	ErrCodeInvalidPriority         GoalErrorCode = "GOL-010004"
	ErrCodeInvalidDateRange        GoalErrorCode = "GOL-010005"
	ErrCodeUnauthorizedGoalAccess  GoalErrorCode = "GOL-010006"
	ErrCodeInvalidImportance       GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields       GoalErrorCode = "GOL-010008"
	ErrCodeInvalidGoalStatus       GoalErrorCode = "GOL-010009"
	ErrCodeInvalidInstallments     GoalErrorCode = "GOL-010010"
	ErrCodeInvalidMoney            GoalErrorCode = "GOL-010011"
	ErrCodeInvalidStatusTransition GoalErrorCode = "GOL-010012"
	ErrCodeInvalidProfile          GoalErrorCode = "GOL-010013"

	// Business rule errors (02XXXX)
	ErrCodeGoalNotFeasible GoalErrorCode = "GOL-020001"
	ErrCodeGoalConflict    GoalErrorCode = "GOL-020002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
	Details []string
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails attaches a list of human-readable details (validation errors, conflicts).
func (e *GoalError) WithDetails(details []string) *GoalError {
	e.Details = details
	return e
}

// goalErrorCodes maps construction sentinels to their error codes.
var goalErrorCodes = map[error]GoalErrorCode{
	ErrEmptyDescription:    ErrCodeEmptyDescription,
	ErrInvalidGoalType:     ErrCodeInvalidGoalType,
	ErrInvalidPriority:     ErrCodeInvalidPriority,
	ErrInvalidDateRange:    ErrCodeInvalidDateRange,
	ErrInvalidImportance:   ErrCodeInvalidImportance,
	ErrInvalidGoalStatus:   ErrCodeInvalidGoalStatus,
	ErrInvalidInstallments: ErrCodeInvalidInstallments,
}

// WrapGoalConstructionError converts an entity construction failure into a GoalError,
// keeping the sentinel message so it can be shown to the end user as-is.
func WrapGoalConstructionError(err error) *GoalError {
	for sentinel, code := range goalErrorCodes {
		if errors.Is(err, sentinel) {
			return NewGoalError(code, sentinel.Error(), sentinel)
		}
	}
	if IsMoneyError(err) {
		return NewGoalError(ErrCodeInvalidMoney, err.Error(), err)
	}
	return NewGoalError(ErrCodeMissingGoalFields, "invalid goal", err)
}
