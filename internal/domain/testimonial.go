package domain

import "time"

type Testimonial struct {
	ID             int64     `json:"id"`
	ClientName     string    `json:"client_name"`
	ClientCompany  string    `json:"client_company,omitempty"`
	ClientPosition string    `json:"client_position,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Quote          string    `json:"quote"`
	Rating         int       `json:"rating"`
	IsPublished    bool      `json:"is_published"`
	SortOrder      int       `json:"sort_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
