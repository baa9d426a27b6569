package portfolio

import "rampung/internal/domain"

type CreatePortfolioRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=150"`
	Slug         string   `json:"slug" validate:"required,min=2,max=150"`
	Challenge    string   `json:"challenge" validate:"required"`
	Solution     string   `json:"solution" validate:"required"`
	TechStack    []string `json:"tech_stack"`
	Tags         []string `json:"tags"`
	ThumbnailURL string   `json:"thumbnail_url" validate:"omitempty,url"`
	Images       []string `json:"images" validate:"dive,url"`
	IsFeatured   bool     `json:"is_featured"`
	IsPublished  bool     `json:"is_published"`
	SortOrder    int      `json:"sort_order"`
}

func (r CreatePortfolioRequest) toDomain() *domain.Portfolio {
	return &domain.Portfolio{
		Title:        r.Title,
		Slug:         r.Slug,
		Challenge:    r.Challenge,
		Solution:     r.Solution,
		TechStack:    r.TechStack,
		Tags:         r.Tags,
		ThumbnailURL: r.ThumbnailURL,
		Images:       r.Images,
		IsFeatured:   r.IsFeatured,
		IsPublished:  r.IsPublished,
		SortOrder:    r.SortOrder,
	}
}

// UpdatePortfolioRequest replaces the whole record; it is the same shape as
// create, just bound to an existing id.
type UpdatePortfolioRequest = CreatePortfolioRequest
