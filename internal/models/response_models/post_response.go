package response_models

import (
	"anuncia/internal/models/db_models"
)

type PostResponse struct {
	ID               string `json:"id"`
	AuthorID         string `json:"author_id"`
	AuthorName       string `json:"author_name"`
	AuthorProfession string `json:"author_profession"`
	Category         string `json:"category"`
	Title            string `json:"title"`
	Body             string `json:"body"`
	Whatsapp         string `json:"whatsapp,omitempty"`
	Phone            string `json:"phone,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	CreatedAt        int64  `json:"created_at"`
}

func PostFromModel(p *db_models.Post) PostResponse {
	return PostResponse{
		ID:               p.ID.String(),
		AuthorID:         p.AuthorID.String(),
		AuthorName:       p.AuthorName,
		AuthorProfession: p.AuthorProfession,
		Category:         p.Category,
		Title:            p.Title,
		Body:             p.Body,
		Whatsapp:         p.Whatsapp,
		Phone:            p.Phone,
		ImageURL:         p.ImageURL,
		CreatedAt:        p.CreatedAt,
	}
}

func PostsFromModels(posts []db_models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, PostFromModel(&posts[i]))
	}
	return out
}
