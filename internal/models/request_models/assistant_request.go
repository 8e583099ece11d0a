package request_models

type AdCopyRequest struct {
	Profession string   `json:"profession" binding:"required,max=60"`
	Keywords   []string `json:"keywords" binding:"required,min=1,max=10"`
}

type ChatTurn struct {
	Role string `json:"role" binding:"required,oneof=user assistant"`
	Text string `json:"text" binding:"required"`
}

type ChatRequest struct {
	Message string     `json:"message" binding:"required,max=2000"`
	History []ChatTurn `json:"history,omitempty"`
}
