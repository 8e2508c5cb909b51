package goal

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/service"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// ProfileData carries the user's financial snapshot used to generate recommendations.
type ProfileData struct {
	MonthlyIncome     float64
	FixedExpenses     float64
	AvailablePerMonth float64
	CurrentSavings    float64
	Currency          string
	Age               int
	RiskTolerance     entity.RiskTolerance
}

// toProfile validates the data and builds a FinancialProfile.
func (d ProfileData) toProfile(defaultCurrency string) (entity.FinancialProfile, error) {
	invalid := func(message string) error {
		return domainerror.NewGoalError(domainerror.ErrCodeInvalidProfile, message, domainerror.ErrInvalidProfile)
	}

	if d.Age <= 0 {
		return entity.FinancialProfile{}, invalid("age must be greater than zero")
	}
	if d.RiskTolerance != "" && !d.RiskTolerance.IsValid() {
		return entity.FinancialProfile{}, invalid("risk tolerance must be 'conservador', 'moderado' or 'agressivo'")
	}

	currency := d.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	profile := entity.FinancialProfile{Age: d.Age, RiskTolerance: d.RiskTolerance}
	amounts := []struct {
		dst    *valueobject.Money
		amount float64
	}{
		{&profile.MonthlyIncome, d.MonthlyIncome},
		{&profile.FixedExpenses, d.FixedExpenses},
		{&profile.AvailablePerMonth, d.AvailablePerMonth},
		{&profile.CurrentSavings, d.CurrentSavings},
	}
	for _, a := range amounts {
		m, err := valueobject.NewMoney(a.amount, currency)
		if err != nil {
			return entity.FinancialProfile{}, domainerror.NewGoalError(domainerror.ErrCodeInvalidProfile, err.Error(), err)
		}
		*a.dst = m
	}

	return profile, nil
}

// RecommendGoalsInput represents the input for generating recommendations.
type RecommendGoalsInput struct {
	UserID  uuid.UUID
	Profile ProfileData
}

// ScoredRecommendation pairs a recommendation with its feasibility check.
type ScoredRecommendation struct {
	Recommendation entity.GoalRecommendation
	Feasibility    valueobject.FeasibilityCheck
}

// RecommendGoalsOutput represents the generated recommendations, best first.
type RecommendGoalsOutput struct {
	Recommendations []ScoredRecommendation
	Cached          bool
}

// RecommendGoalsUseCase proposes new goals from a financial profile, skipping the
// kinds of goal the user already has.
type RecommendGoalsUseCase struct {
	goalRepo        adapter.GoalRepository
	recommender     *service.GoalRecommendationService
	cache           adapter.RecommendationCache
	defaultCurrency string
}

// NewRecommendGoalsUseCase creates a new RecommendGoalsUseCase instance.
// cache may be nil, in which case recommendations are always generated.
func NewRecommendGoalsUseCase(
	goalRepo adapter.GoalRepository,
	recommender *service.GoalRecommendationService,
	cache adapter.RecommendationCache,
	defaultCurrency string,
) *RecommendGoalsUseCase {
	return &RecommendGoalsUseCase{
		goalRepo:        goalRepo,
		recommender:     recommender,
		cache:           cache,
		defaultCurrency: defaultCurrency,
	}
}

// Execute generates the recommendations.
func (uc *RecommendGoalsUseCase) Execute(ctx context.Context, input RecommendGoalsInput) (*RecommendGoalsOutput, error) {
	profile, err := input.Profile.toProfile(uc.defaultCurrency)
	if err != nil {
		return nil, err
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user goals: %w", err)
	}

	// cancelled goals no longer cover their kind of recommendation
	existing := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if !g.IsCancelled() {
			existing = append(existing, g)
		}
	}

	key := recommendationCacheKey(input.UserID, profile, existing)

	recs, cached := uc.cachedRecommendations(ctx, key)
	if !cached {
		recs = uc.recommender.GenerateGoalRecommendations(profile, existing)
		if uc.cache != nil {
			if err := uc.cache.Set(ctx, key, recs); err != nil {
				slog.Warn("Failed to cache recommendations", "error", err, "userID", input.UserID)
			}
		}
	}

	output := &RecommendGoalsOutput{
		Recommendations: make([]ScoredRecommendation, 0, len(recs)),
		Cached:          cached,
	}
	for _, rec := range recs {
		output.Recommendations = append(output.Recommendations, ScoredRecommendation{
			Recommendation: rec,
			Feasibility:    uc.recommender.ValidateRecommendationFeasibility(rec, profile),
		})
	}

	return output, nil
}

func (uc *RecommendGoalsUseCase) cachedRecommendations(ctx context.Context, key string) ([]entity.GoalRecommendation, bool) {
	if uc.cache == nil {
		return nil, false
	}

	recs, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Failed to read cached recommendations", "error", err, "key", key)
		return nil, false
	}
	return recs, ok
}

// recommendationCacheKey identifies a recommendation request by the user, the profile
// and every goal field the rule set looks at.
func recommendationCacheKey(userID uuid.UUID, profile entity.FinancialProfile, goals []*entity.Goal) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%d|%s",
		userID,
		profile.MonthlyIncome, profile.FixedExpenses, profile.AvailablePerMonth, profile.CurrentSavings,
		profile.Age, profile.RiskTolerance,
	)

	parts := make([]string, 0, len(goals))
	for _, g := range goals {
		parts = append(parts, fmt.Sprintf("%s|%s|%s|%s", g.ID(), g.Type(), g.Strategy(), g.Description()))
	}
	sort.Strings(parts)
	for _, p := range parts {
		fmt.Fprintf(h, "\n%s", p)
	}

	return "recommendations:" + userID.String() + ":" + hex.EncodeToString(h.Sum(nil))[:16]
}
