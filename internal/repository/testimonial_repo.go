package repository

import (
	"context"
	"time"

	"rampung/internal/domain"

	"gorm.io/gorm"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

type testimonialModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	ClientName     string    `gorm:"column:client_name"`
	ClientCompany  string    `gorm:"column:client_company"`
	ClientPosition string    `gorm:"column:client_position"`
	AvatarURL      string    `gorm:"column:avatar_url"`
	Quote          string    `gorm:"column:quote;type:text"`
	Rating         int       `gorm:"column:rating"`
	IsPublished    bool      `gorm:"column:is_published;index"`
	SortOrder      int       `gorm:"column:sort_order"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (testimonialModel) TableName() string { return "testimonials" }

func toDomainTestimonial(m testimonialModel) *domain.Testimonial {
	return &domain.Testimonial{
		ID:             m.ID,
		ClientName:     m.ClientName,
		ClientCompany:  m.ClientCompany,
		ClientPosition: m.ClientPosition,
		AvatarURL:      m.AvatarURL,
		Quote:          m.Quote,
		Rating:         m.Rating,
		IsPublished:    m.IsPublished,
		SortOrder:      m.SortOrder,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toTestimonialModel(t *domain.Testimonial) testimonialModel {
	return testimonialModel{
		ID:             t.ID,
		ClientName:     t.ClientName,
		ClientCompany:  t.ClientCompany,
		ClientPosition: t.ClientPosition,
		AvatarURL:      t.AvatarURL,
		Quote:          t.Quote,
		Rating:         t.Rating,
		IsPublished:    t.IsPublished,
		SortOrder:      t.SortOrder,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	m := toTestimonialModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	t.ID = m.ID
	t.CreatedAt = m.CreatedAt
	t.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	var m testimonialModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainTestimonial(m), nil
}

func (r *TestimonialRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Model(&testimonialModel{}).
		Order("sort_order ASC, created_at DESC")
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}

	var models []testimonialModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	items := make([]domain.Testimonial, 0, len(models))
	for _, m := range models {
		items = append(items, *toDomainTestimonial(m))
	}
	return items, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	m := toTestimonialModel(t)
	tx := r.db.WithContext(ctx).Model(&testimonialModel{}).Where("id = ?", t.ID).
		Select("*").Omit("id", "created_at").Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&testimonialModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&testimonialModel{}).Count(&n).Error
	return n, err
}
