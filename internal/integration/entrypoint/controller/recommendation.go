package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-planner/backend/internal/application/usecase/goal"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

// RecommendationController handles goal recommendation endpoints.
type RecommendationController struct {
	recommendUseCase *goal.RecommendGoalsUseCase
	acceptUseCase    *goal.AcceptRecommendationUseCase
}

// NewRecommendationController creates a new recommendation controller instance.
func NewRecommendationController(
	recommendUseCase *goal.RecommendGoalsUseCase,
	acceptUseCase *goal.AcceptRecommendationUseCase,
) *RecommendationController {
	return &RecommendationController{
		recommendUseCase: recommendUseCase,
		acceptUseCase:    acceptUseCase,
	}
}

// Recommend handles POST /users/:user_id/recommendations requests.
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.RecommendGoalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	output, err := c.recommendUseCase.Execute(ctx.Request.Context(), goal.RecommendGoalsInput{
		UserID:  userID,
		Profile: req.ToProfileData(),
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecommendGoalsResponse(output))
}

// Accept handles POST /users/:user_id/recommendations/accept requests.
func (c *RecommendationController) Accept(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.AcceptRecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		badRequest(ctx, err.Error(), domainerror.ErrCodeInvalidRequestBody)
		return
	}
	input.UserID = userID

	output, err := c.acceptUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateGoalResponse(output))
}
