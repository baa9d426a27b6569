package repository

import (
	"context"
	"time"

	"rampung/internal/domain"
	"rampung/internal/pkg/utils"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

type submissionModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	PublicID string `gorm:"column:public_id;uniqueIndex;size:36"`

	Name          string `gorm:"column:name"`
	Email         string `gorm:"column:email;index"`
	Company       string `gorm:"column:company"`
	BudgetIDR     *int64 `gorm:"column:budget_idr"`
	BudgetUSD     *int64 `gorm:"column:budget_usd"`
	Platform      string `gorm:"column:platform"`
	PlatformOther string `gorm:"column:platform_other"`
	TargetUser    string `gorm:"column:target_user"`
	Features      string `gorm:"column:features;type:text"`
	Timeline      string `gorm:"column:timeline"`

	ScoreBudget      int    `gorm:"column:score_budget"`
	ScorePlatform    int    `gorm:"column:score_platform"`
	ScoreTargetUser  int    `gorm:"column:score_target_user"`
	ScoreFeatures    int    `gorm:"column:score_features"`
	ScoreTimeline    int    `gorm:"column:score_timeline"`
	TotalScore       int    `gorm:"column:total_score;index"`
	ComplexityLevel  string `gorm:"column:complexity_level;index"`
	TimelineWarning  bool   `gorm:"column:timeline_warning"`
	NeedsMultiTenant bool   `gorm:"column:needs_multi_tenant"`

	Status      string     `gorm:"column:status;index"`
	AdminNotes  string     `gorm:"column:admin_notes"`
	ContactedAt *time.Time `gorm:"column:contacted_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;index"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (submissionModel) TableName() string { return "diagnostic_submissions" }

func toDomainSubmission(m submissionModel) *domain.Submission {
	features := make([]domain.Feature, 0)
	for _, f := range utils.JSONToList(m.Features) {
		features = append(features, domain.Feature(f))
	}

	return &domain.Submission{
		ID:               m.ID,
		PublicID:         m.PublicID,
		Name:             m.Name,
		Email:            m.Email,
		Company:          m.Company,
		BudgetIDR:        m.BudgetIDR,
		BudgetUSD:        m.BudgetUSD,
		Platform:         domain.Platform(m.Platform),
		PlatformOther:    m.PlatformOther,
		TargetUser:       domain.TargetUser(m.TargetUser),
		Features:         features,
		Timeline:         domain.Timeline(m.Timeline),
		ScoreBudget:      m.ScoreBudget,
		ScorePlatform:    m.ScorePlatform,
		ScoreTargetUser:  m.ScoreTargetUser,
		ScoreFeatures:    m.ScoreFeatures,
		ScoreTimeline:    m.ScoreTimeline,
		TotalScore:       m.TotalScore,
		ComplexityLevel:  domain.ComplexityLevel(m.ComplexityLevel),
		TimelineWarning:  m.TimelineWarning,
		NeedsMultiTenant: m.NeedsMultiTenant,
		Status:           domain.SubmissionStatus(m.Status),
		AdminNotes:       m.AdminNotes,
		ContactedAt:      m.ContactedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toSubmissionModel(s *domain.Submission) submissionModel {
	features := make([]string, 0, len(s.Features))
	for _, f := range s.Features {
		features = append(features, string(f))
	}

	return submissionModel{
		ID:               s.ID,
		PublicID:         s.PublicID,
		Name:             s.Name,
		Email:            s.Email,
		Company:          s.Company,
		BudgetIDR:        s.BudgetIDR,
		BudgetUSD:        s.BudgetUSD,
		Platform:         string(s.Platform),
		PlatformOther:    s.PlatformOther,
		TargetUser:       string(s.TargetUser),
		Features:         utils.ListToJSON(features),
		Timeline:         string(s.Timeline),
		ScoreBudget:      s.ScoreBudget,
		ScorePlatform:    s.ScorePlatform,
		ScoreTargetUser:  s.ScoreTargetUser,
		ScoreFeatures:    s.ScoreFeatures,
		ScoreTimeline:    s.ScoreTimeline,
		TotalScore:       s.TotalScore,
		ComplexityLevel:  string(s.ComplexityLevel),
		TimelineWarning:  s.TimelineWarning,
		NeedsMultiTenant: s.NeedsMultiTenant,
		Status:           string(s.Status),
		AdminNotes:       s.AdminNotes,
		ContactedAt:      s.ContactedAt,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	m := toSubmissionModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	s.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	var m submissionModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainSubmission(m), nil
}

func (r *SubmissionRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Submission, error) {
	var m submissionModel
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainSubmission(m), nil
}

// SubmissionFilters narrows and orders the admin listing.
type SubmissionFilters struct {
	Statuses     []domain.SubmissionStatus
	Complexities []domain.ComplexityLevel
	Search       string // matches name, email or company
	SortBy       string
	SortDesc     bool
	Limit        int
	Offset       int
}

// listSortColumns is the allow-list for ORDER BY; anything else falls back
// to created_at.
var listSortColumns = map[string]bool{
	"created_at":  true,
	"total_score": true,
	"name":        true,
	"status":      true,
}

func (r *SubmissionRepository) buildListQuery(ctx context.Context, f SubmissionFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&submissionModel{})

	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if len(f.Complexities) > 0 {
		q = q.Where("complexity_level IN ?", f.Complexities)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(company) LIKE LOWER(?)",
			like, like, like,
		)
	}
	return q
}

func (r *SubmissionRepository) List(ctx context.Context, f SubmissionFilters) ([]domain.Submission, int64, error) {
	var total int64
	if err := r.buildListQuery(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := f.SortBy
	if !listSortColumns[sortBy] {
		sortBy = "created_at"
	}
	order := sortBy + " ASC"
	if f.SortDesc {
		order = sortBy + " DESC"
	}

	q := r.buildListQuery(ctx, f).Order(order)
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var models []submissionModel
	if err := q.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	subs := make([]domain.Submission, 0, len(models))
	for _, m := range models {
		subs = append(subs, *toDomainSubmission(m))
	}
	return subs, total, nil
}

// Patch updates only the given columns; the caller owns the allow-list.
func (r *SubmissionRepository) Patch(ctx context.Context, id int64, updates map[string]any) (*domain.Submission, error) {
	updates["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).Model(&submissionModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SubmissionRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&submissionModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SubmissionRepository) CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.SubmissionStatus]int64, len(rows))
	for _, r := range rows {
		counts[domain.SubmissionStatus(r.Status)] = r.N
	}
	return counts, nil
}

func (r *SubmissionRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Where("created_at >= ?", since).
		Count(&n).Error
	return n, err
}
