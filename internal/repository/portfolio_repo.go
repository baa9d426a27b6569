package repository

import (
	"context"
	"time"

	"rampung/internal/domain"
	"rampung/internal/pkg/utils"

	"gorm.io/gorm"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

type portfolioModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Title        string    `gorm:"column:title"`
	Slug         string    `gorm:"column:slug;uniqueIndex;size:160"`
	Challenge    string    `gorm:"column:challenge;type:text"`
	Solution     string    `gorm:"column:solution;type:text"`
	TechStack    string    `gorm:"column:tech_stack;type:text"`
	Tags         string    `gorm:"column:tags;type:text"`
	ThumbnailURL string    `gorm:"column:thumbnail_url"`
	Images       string    `gorm:"column:images;type:text"`
	IsFeatured   bool      `gorm:"column:is_featured"`
	IsPublished  bool      `gorm:"column:is_published;index"`
	SortOrder    int       `gorm:"column:sort_order"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (portfolioModel) TableName() string { return "portfolios" }

func toDomainPortfolio(m portfolioModel) *domain.Portfolio {
	return &domain.Portfolio{
		ID:           m.ID,
		Title:        m.Title,
		Slug:         m.Slug,
		Challenge:    m.Challenge,
		Solution:     m.Solution,
		TechStack:    utils.JSONToList(m.TechStack),
		Tags:         utils.JSONToList(m.Tags),
		ThumbnailURL: m.ThumbnailURL,
		Images:       utils.JSONToList(m.Images),
		IsFeatured:   m.IsFeatured,
		IsPublished:  m.IsPublished,
		SortOrder:    m.SortOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toPortfolioModel(p *domain.Portfolio) portfolioModel {
	return portfolioModel{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Challenge:    p.Challenge,
		Solution:     p.Solution,
		TechStack:    utils.ListToJSON(p.TechStack),
		Tags:         utils.ListToJSON(p.Tags),
		ThumbnailURL: p.ThumbnailURL,
		Images:       utils.ListToJSON(p.Images),
		IsFeatured:   p.IsFeatured,
		IsPublished:  p.IsPublished,
		SortOrder:    p.SortOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *PortfolioRepository) Create(ctx context.Context, p *domain.Portfolio) error {
	m := toPortfolioModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	var m portfolioModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainPortfolio(m), nil
}

func (r *PortfolioRepository) GetBySlug(ctx context.Context, slug string) (*domain.Portfolio, error) {
	var m portfolioModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainPortfolio(m), nil
}

// List returns items ordered by sort_order; publishedOnly limits it to the
// public set.
func (r *PortfolioRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Portfolio, error) {
	q := r.db.WithContext(ctx).Model(&portfolioModel{}).
		Order("sort_order ASC, created_at DESC")
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}

	var models []portfolioModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	items := make([]domain.Portfolio, 0, len(models))
	for _, m := range models {
		items = append(items, *toDomainPortfolio(m))
	}
	return items, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, p *domain.Portfolio) error {
	m := toPortfolioModel(p)
	tx := r.db.WithContext(ctx).Model(&portfolioModel{}).Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&portfolioModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PortfolioRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&portfolioModel{}).Count(&n).Error
	return n, err
}
