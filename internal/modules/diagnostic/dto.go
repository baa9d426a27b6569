package diagnostic

import "rampung/internal/domain"

// SubmitDiagnosticRequest is the wire shape of a completed questionnaire
// draft, as the wizard posts it.
type SubmitDiagnosticRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Company       string   `json:"company"`
	BudgetIDR     string   `json:"budget_idr"`
	BudgetUSD     string   `json:"budget_usd"`
	Platform      string   `json:"platform"`
	PlatformOther string   `json:"platform_other"`
	TargetUser    string   `json:"target_user"`
	Features      []string `json:"features"`
	Timeline      string   `json:"timeline"`
}

func (r SubmitDiagnosticRequest) ToDraft() domain.Draft {
	features := make([]domain.Feature, 0, len(r.Features))
	for _, f := range r.Features {
		features = append(features, domain.Feature(f))
	}

	return domain.Draft{
		Name:          r.Name,
		Email:         r.Email,
		Company:       r.Company,
		BudgetIDR:     r.BudgetIDR,
		BudgetUSD:     r.BudgetUSD,
		Platform:      domain.Platform(r.Platform),
		PlatformOther: r.PlatformOther,
		TargetUser:    domain.TargetUser(r.TargetUser),
		Features:      features,
		Timeline:      domain.Timeline(r.Timeline),
	}
}

// SubmitDiagnosticResponse acknowledges an accepted submission. The score
// summary drives the thank-you screen.
type SubmitDiagnosticResponse struct {
	ID              string                 `json:"id"`
	TotalScore      int                    `json:"total_score"`
	ComplexityLevel domain.ComplexityLevel `json:"complexity_level"`
}
