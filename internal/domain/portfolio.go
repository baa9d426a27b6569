package domain

import "time"

type Portfolio struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Challenge    string    `json:"challenge"`
	Solution     string    `json:"solution"`
	TechStack    []string  `json:"tech_stack"`
	Tags         []string  `json:"tags"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Images       []string  `json:"images,omitempty"`
	IsFeatured   bool      `json:"is_featured"`
	IsPublished  bool      `json:"is_published"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
