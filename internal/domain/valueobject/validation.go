package valueobject

// Severity classifies a validation message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationResult collects the errors and warnings produced by a validator.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// NewValidationResult returns an empty, valid result.
func NewValidationResult() ValidationResult {
	return ValidationResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}
}

// Add appends a message with the given severity. Errors invalidate the result.
func (r *ValidationResult) Add(severity Severity, message string) {
	switch severity {
	case SeverityError:
		r.Errors = append(r.Errors, message)
		r.IsValid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, message)
	}
}

// Merge folds another result into r.
func (r *ValidationResult) Merge(other ValidationResult) {
	for _, e := range other.Errors {
		r.Add(SeverityError, e)
	}
	for _, w := range other.Warnings {
		r.Add(SeverityWarning, w)
	}
}

// ConflictResult reports budget and schedule conflicts between goals.
type ConflictResult struct {
	HasConflicts bool
	Conflicts    []string
}

// ValidationSummary is the aggregate report for a single goal.
type ValidationSummary struct {
	IsValid          bool
	Errors           []string
	Warnings         []string
	FeasibilityScore int
	Recommendations  []string
}

// FeasibilityAnalysis is the calculation report for a goal's funding plan.
type FeasibilityAnalysis struct {
	IsFeasible          bool
	MonthlyDeficit      Money
	TotalDeficit        Money
	EstimatedMonths     float64
	MonthsUntilDeadline int
	Recommendations     []string
}

// FeasibilityCheck is the confidence report for a recommended goal.
type FeasibilityCheck struct {
	IsFeasible bool
	Confidence int
	Reasons    []string
}
