package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
)

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func handleGoalError(ctx *gin.Context, err error) {
	statusCode, response := goalErrorResponse(err)
	if statusCode == http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
	}
	ctx.JSON(statusCode, response)
}

// goalErrorResponse converts an error into a status code and error body.
func goalErrorResponse(err error) (int, dto.ErrorResponse) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		return getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error:   goalErr.Message,
			Code:    string(goalErr.Code),
			Details: goalErr.Details,
		}
	}

	return http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	}
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeGoalConflict:
		return http.StatusConflict
	case domainerror.ErrCodeGoalNotFeasible:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeEmptyDescription,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeInvalidPriority,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidImportance,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInvalidGoalStatus,
		domainerror.ErrCodeInvalidInstallments,
		domainerror.ErrCodeInvalidMoney,
		domainerror.ErrCodeInvalidStatusTransition,
		domainerror.ErrCodeInvalidProfile:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx *gin.Context, message string, code domainerror.RequestErrorCode) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// requireUserID reads the scoped user ID, writing a 400 response when it is absent.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		badRequest(ctx, "User ID is required", domainerror.ErrCodeInvalidUserID)
		return uuid.Nil, false
	}
	return userID, true
}

// requireGoalID parses the :id path parameter, writing a 400 response when it is malformed.
func requireGoalID(ctx *gin.Context) (uuid.UUID, bool) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid goal ID format", domainerror.ErrCodeInvalidGoalID)
		return uuid.Nil, false
	}
	return goalID, true
}
