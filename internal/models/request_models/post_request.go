package request_models

type CreatePostRequest struct {
	Category string `json:"category" binding:"required"`
	Title    string `json:"title" binding:"required,max=120"`
	Body     string `json:"body" binding:"required"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Phone    string `json:"phone,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type UpdatePostRequest struct {
	Category *string `json:"category,omitempty"`
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	Whatsapp *string `json:"whatsapp,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}
