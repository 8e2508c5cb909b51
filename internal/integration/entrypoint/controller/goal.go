// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase           *goal.ListGoalsUseCase
	createUseCase         *goal.CreateGoalUseCase
	getUseCase            *goal.GetGoalUseCase
	updateUseCase         *goal.UpdateGoalUseCase
	updateStatusUseCase   *goal.UpdateGoalStatusUseCase
	deleteUseCase         *goal.DeleteGoalUseCase
	validateUseCase       *goal.ValidateGoalUseCase
	checkConflictsUseCase *goal.CheckGoalConflictsUseCase
	importUseCase         *goal.ImportGoalsUseCase
}

// GoalUseCases groups the use cases served by the goal controller.
type GoalUseCases struct {
	List           *goal.ListGoalsUseCase
	Create         *goal.CreateGoalUseCase
	Get            *goal.GetGoalUseCase
	Update         *goal.UpdateGoalUseCase
	UpdateStatus   *goal.UpdateGoalStatusUseCase
	Delete         *goal.DeleteGoalUseCase
	Validate       *goal.ValidateGoalUseCase
	CheckConflicts *goal.CheckGoalConflictsUseCase
	Import         *goal.ImportGoalsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(useCases GoalUseCases) *GoalController {
	return &GoalController{
		listUseCase:           useCases.List,
		createUseCase:         useCases.Create,
		getUseCase:            useCases.Get,
		updateUseCase:         useCases.Update,
		updateStatusUseCase:   useCases.UpdateStatus,
		deleteUseCase:         useCases.Delete,
		validateUseCase:       useCases.Validate,
		checkConflictsUseCase: useCases.CheckConflicts,
		importUseCase:         useCases.Import,
	}
}

// List handles GET /users/:user_id/goals requests.
// Optional query parameters: status, type.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := goal.ListGoalsInput{UserID: userID}

	if raw := ctx.Query("status"); raw != "" {
		status := entity.GoalStatus(raw)
		if !status.IsValid() {
			badRequest(ctx, "Invalid status filter", domainerror.ErrCodeInvalidQuery)
			return
		}
		input.Status = &status
	}
	if raw := ctx.Query("type"); raw != "" {
		goalType := entity.GoalType(raw)
		if !goalType.IsValid() {
			badRequest(ctx, "Invalid type filter", domainerror.ErrCodeInvalidQuery)
			return
		}
		input.Type = &goalType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output))
}

// Export handles GET /users/:user_id/goals/export requests.
func (c *GoalController) Export(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	goals := make([]map[string]any, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = g.ToMap()
	}

	ctx.JSON(http.StatusOK, gin.H{"goals": goals})
}

// Create handles POST /users/:user_id/goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	data, err := req.ToGoalData()
	if err != nil {
		badRequest(ctx, err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:   userID,
		GoalData: data,
		Strict:   req.Strict,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateGoalResponse(output))
}

// Import handles POST /users/:user_id/goals/import requests.
// Each goal is created independently; the response reports per-item outcomes.
func (c *GoalController) Import(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.ImportGoalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	goals := make([]goal.GoalData, len(req.Goals))
	for i, g := range req.Goals {
		data, err := g.ToGoalData()
		if err != nil {
			badRequest(ctx, "goals["+strconv.Itoa(i)+"]: "+err.Error(), domainerror.ErrCodeInvalidRequestBody)
			return
		}
		goals[i] = data
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), goal.ImportGoalsInput{
		UserID: userID,
		Goals:  goals,
		Strict: req.Strict,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	response := dto.ImportGoalsResponse{
		Imported: output.Imported,
		Failed:   output.Failed,
		Items:    make([]dto.ImportItemResponse, len(output.Results)),
	}
	for i, res := range output.Results {
		item := dto.ImportItemResponse{Index: i}
		if created, err := res.Value(); err != nil {
			_, errResponse := goalErrorResponse(err)
			item.Error = &errResponse
		} else {
			goalResponse := dto.ToGoalResponse(created)
			item.Goal = &goalResponse
		}
		response.Items[i] = item
	}

	statusCode := http.StatusCreated
	if output.Imported == 0 {
		statusCode = http.StatusUnprocessableEntity
	} else if output.Failed > 0 {
		statusCode = http.StatusMultiStatus
	}
	ctx.JSON(statusCode, response)
}

// CheckConflicts handles POST /users/:user_id/goals/check-conflicts requests.
// The candidate goal is evaluated against the user's active goals without being stored.
func (c *GoalController) CheckConflicts(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	data, err := req.ToGoalData()
	if err != nil {
		badRequest(ctx, err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	output, err := c.checkConflictsUseCase.Execute(ctx.Request.Context(), goal.CheckGoalConflictsInput{
		UserID:   userID,
		GoalData: data,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckConflictsResponse(output))
}

// Get handles GET /users/:user_id/goals/:id requests.
// Optional query parameter: current_amount.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := requireGoalID(ctx)
	if !ok {
		return
	}
	current, ok := currentAmountQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID:        goalID,
		UserID:        userID,
		CurrentAmount: current,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProgressResponse(output))
}

// Update handles PATCH /users/:user_id/goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := requireGoalID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:              goalID,
		UserID:              userID,
		Description:         req.Description,
		MonthlyContribution: req.MonthlyContribution,
		NumParcela:          req.NumParcela,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// UpdateStatus handles POST /users/:user_id/goals/:id/status requests.
func (c *GoalController) UpdateStatus(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := requireGoalID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalStatusInput{
		GoalID: goalID,
		UserID: userID,
		Action: goal.StatusAction(req.Action),
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusChangeResponse{
		Goal:           dto.ToGoalResponse(output.Goal),
		PreviousStatus: string(output.PreviousStatus),
	})
}

// Validate handles GET /users/:user_id/goals/:id/validation requests.
// Optional query parameter: current_amount.
func (c *GoalController) Validate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := requireGoalID(ctx)
	if !ok {
		return
	}
	current, ok := currentAmountQuery(ctx)
	if !ok {
		return
	}

	output, err := c.validateUseCase.Execute(ctx.Request.Context(), goal.ValidateGoalInput{
		GoalID:        goalID,
		UserID:        userID,
		CurrentAmount: current,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalValidationResponse(output))
}

// Delete handles DELETE /users/:user_id/goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := requireGoalID(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func currentAmountQuery(ctx *gin.Context) (float64, bool) {
	raw := ctx.Query("current_amount")
	if raw == "" {
		return 0, true
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		badRequest(ctx, "current_amount must be a non-negative number", domainerror.ErrCodeInvalidQuery)
		return 0, false
	}
	return amount, true
}
