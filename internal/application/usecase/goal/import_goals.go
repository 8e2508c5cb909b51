package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/result"
)

// ImportGoalsInput represents a batch of goals to create for one user.
type ImportGoalsInput struct {
	UserID uuid.UUID
	Goals  []GoalData
	Strict bool
}

// ImportGoalsOutput holds one outcome per input goal, in input order.
type ImportGoalsOutput struct {
	Results  []result.Result[*entity.Goal]
	Imported int
	Failed   int
}

// ImportGoalsUseCase creates goals in bulk. A failing goal does not stop the batch.
type ImportGoalsUseCase struct {
	create *CreateGoalUseCase
}

// NewImportGoalsUseCase creates a new ImportGoalsUseCase instance.
func NewImportGoalsUseCase(create *CreateGoalUseCase) *ImportGoalsUseCase {
	return &ImportGoalsUseCase{
		create: create,
	}
}

// Execute performs the import.
func (uc *ImportGoalsUseCase) Execute(ctx context.Context, input ImportGoalsInput) (*ImportGoalsOutput, error) {
	output := &ImportGoalsOutput{
		Results: make([]result.Result[*entity.Goal], 0, len(input.Goals)),
	}

	for i, data := range input.Goals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		created, err := uc.create.Execute(ctx, CreateGoalInput{
			UserID:   input.UserID,
			GoalData: data,
			Strict:   input.Strict,
		})
		res := result.Map(result.From(created, err), func(out *CreateGoalOutput) *entity.Goal {
			return out.Goal
		})

		if res.IsFailure() {
			output.Failed++
			slog.Debug("Goal import item rejected", "index", i, "userID", input.UserID, "error", res.Err())
		} else {
			output.Imported++
		}
		output.Results = append(output.Results, res)
	}

	slog.Info("Goals imported",
		"userID", input.UserID,
		"imported", output.Imported,
		"failed", output.Failed,
	)

	return output, nil
}
