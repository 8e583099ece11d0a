package response_models

type AdCopyResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ChatReplyResponse struct {
	Reply string `json:"reply"`
}
