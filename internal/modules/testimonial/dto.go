package testimonial

import "rampung/internal/domain"

type CreateTestimonialRequest struct {
	ClientName     string `json:"client_name" validate:"required,min=2,max=120"`
	ClientCompany  string `json:"client_company" validate:"max=120"`
	ClientPosition string `json:"client_position" validate:"max=120"`
	AvatarURL      string `json:"avatar_url" validate:"omitempty,url"`
	Quote          string `json:"quote" validate:"required,min=10"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	IsPublished    bool   `json:"is_published"`
	SortOrder      int    `json:"sort_order"`
}

func (r CreateTestimonialRequest) toDomain() *domain.Testimonial {
	return &domain.Testimonial{
		ClientName:     r.ClientName,
		ClientCompany:  r.ClientCompany,
		ClientPosition: r.ClientPosition,
		AvatarURL:      r.AvatarURL,
		Quote:          r.Quote,
		Rating:         r.Rating,
		IsPublished:    r.IsPublished,
		SortOrder:      r.SortOrder,
	}
}

type UpdateTestimonialRequest = CreateTestimonialRequest
