package domain

import "time"

type Platform string

const (
	PlatformWebApp        Platform = "web_app"
	PlatformMobileAndroid Platform = "mobile_android"
	PlatformOther         Platform = "other"
)

type TargetUser string

const (
	TargetInternal    TargetUser = "internal"
	TargetB2B         TargetUser = "b2b"
	TargetB2C         TargetUser = "b2c"
	TargetMarketplace TargetUser = "marketplace"
	TargetUnknown     TargetUser = "unknown"
)

type Timeline string

const (
	TimelineUrgent    Timeline = "urgent"
	TimelineNormal    Timeline = "normal"
	TimelineFlexible  Timeline = "flexible"
	TimelineLongTerm  Timeline = "long_term"
	TimelineUndecided Timeline = "undecided"
)

type Feature string

const (
	FeatureAuth          Feature = "auth"
	FeaturePayment       Feature = "payment"
	FeatureRealtime      Feature = "realtime"
	FeatureDashboard     Feature = "dashboard"
	FeatureFileUpload    Feature = "file_upload"
	FeatureThirdPartyAPI Feature = "third_party_api"
	FeatureAdminPanel    Feature = "admin_panel"
	FeatureGeolocation   Feature = "geolocation"
)

type ComplexityLevel string

const (
	ComplexityLow        ComplexityLevel = "Low"
	ComplexityMedium     ComplexityLevel = "Medium"
	ComplexityHigh       ComplexityLevel = "High"
	ComplexityEnterprise ComplexityLevel = "Enterprise"
)

type SubmissionStatus string

const (
	StatusNew        SubmissionStatus = "new"
	StatusContacted  SubmissionStatus = "contacted"
	StatusInProgress SubmissionStatus = "in_progress"
	StatusCompleted  SubmissionStatus = "completed"
	StatusArchived   SubmissionStatus = "archived"
)

func ValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case StatusNew, StatusContacted, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Draft is the in-progress questionnaire collected by the intake wizard.
// Budget amounts stay raw strings until scoring; both may be blank.
type Draft struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Company       string     `json:"company,omitempty"`
	BudgetIDR     string     `json:"budget_idr,omitempty"`
	BudgetUSD     string     `json:"budget_usd,omitempty"`
	Platform      Platform   `json:"platform"`
	PlatformOther string     `json:"platform_other,omitempty"`
	TargetUser    TargetUser `json:"target_user"`
	Features      []Feature  `json:"features"`
	Timeline      Timeline   `json:"timeline"`
}

func (d Draft) HasFeature(f Feature) bool {
	for _, got := range d.Features {
		if got == f {
			return true
		}
	}
	return false
}

// Submission is a scored diagnostic record. Draft fields and score fields are
// written exactly once at intake; status, admin_notes and contacted_at are
// mutated only through the admin module's allow-list patch.
type Submission struct {
	ID       int64  `json:"id"`
	PublicID string `json:"public_id"`

	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Company       string     `json:"company,omitempty"`
	BudgetIDR     *int64     `json:"budget_idr,omitempty"`
	BudgetUSD     *int64     `json:"budget_usd,omitempty"`
	Platform      Platform   `json:"platform"`
	PlatformOther string     `json:"platform_other,omitempty"`
	TargetUser    TargetUser `json:"target_user"`
	Features      []Feature  `json:"features"`
	Timeline      Timeline   `json:"timeline"`

	ScoreBudget      int             `json:"score_budget"`
	ScorePlatform    int             `json:"score_platform"`
	ScoreTargetUser  int             `json:"score_target_user"`
	ScoreFeatures    int             `json:"score_features"`
	ScoreTimeline    int             `json:"score_timeline"`
	TotalScore       int             `json:"total_score"`
	ComplexityLevel  ComplexityLevel `json:"complexity_level"`
	TimelineWarning  bool            `json:"timeline_warning"`
	NeedsMultiTenant bool            `json:"needs_multi_tenant"`

	Status      SubmissionStatus `json:"status"`
	AdminNotes  string           `json:"admin_notes,omitempty"`
	ContactedAt *time.Time       `json:"contacted_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
