package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/utils"
)

// fallbackReply is returned whenever the provider call fails. The widget
// always gets something to render.
const fallbackReply = "Desculpe, não consegui responder agora. Tente novamente em instantes."

const retrievalLimit = 5

type AssistantServiceInterface interface {
	GenerateAdCopy(ctx context.Context, request request_models.AdCopyRequest) (*response_models.AdCopyResponse, error)
	ChatReply(ctx context.Context, request request_models.ChatRequest) (*response_models.ChatReplyResponse, error)
	IndexPost(ctx context.Context, post *db_models.Post) error
	RemovePostIndex(ctx context.Context, postID string)
}

type AssistantService struct {
	client     utils.AssistantClientInterface
	embeddings repositories.AdEmbeddingRepository
}

func NewAssistantService(client utils.AssistantClientInterface, embeddings repositories.AdEmbeddingRepository) AssistantServiceInterface {
	return &AssistantService{client: client, embeddings: embeddings}
}

func (a *AssistantService) GenerateAdCopy(ctx context.Context, request request_models.AdCopyRequest) (*response_models.AdCopyResponse, error) {
	prompt := fmt.Sprintf(`Você escreve anúncios curtos para um mural de classificados brasileiro.
Profissão do anunciante: %s
Palavras-chave: %s

Escreva um anúncio atraente em português. Responda SOMENTE com JSON no formato:
{"title": "título com até 60 caracteres", "content": "texto do anúncio com 2 a 4 frases"}`,
		request.Profession, strings.Join(request.Keywords, ", "))

	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("ad copy generation failed: %v", err)
		return nil, utils.ErrAssistantFailure
	}

	var out response_models.AdCopyResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out.Title == "" {
		log.Printf("ad copy response not parseable: %v", err)
		return nil, utils.ErrAssistantFailure
	}
	return &out, nil
}

// ChatReply grounds the conversation on the ads closest to the question.
// Retrieval problems degrade to an ungrounded reply and provider problems
// degrade to a fixed apology; neither surfaces as an error.
func (a *AssistantService) ChatReply(ctx context.Context, request request_models.ChatRequest) (*response_models.ChatReplyResponse, error) {
	systemPrompt := a.buildSystemPrompt(ctx, request.Message)

	reply, err := a.client.ChatReply(ctx, systemPrompt, request.History, request.Message)
	if err != nil {
		log.Printf("chat reply failed: %v", err)
		return &response_models.ChatReplyResponse{Reply: fallbackReply}, nil
	}
	return &response_models.ChatReplyResponse{Reply: reply}, nil
}

func (a *AssistantService) IndexPost(ctx context.Context, post *db_models.Post) error {
	text := fmt.Sprintf("%s\n%s\n%s\n%s", post.Title, post.Body, post.Category, post.AuthorProfession)
	vector, err := a.client.GetEmbedding(ctx, text)
	if err != nil {
		return err
	}

	embedding := &db_models.AdEmbedding{
		PostID:     post.ID.String(),
		Title:      post.Title,
		Body:       post.Body,
		Category:   post.Category,
		AuthorName: post.AuthorName,
		Keywords:   extractKeywords(post),
		Embedding:  vector,
	}
	return a.embeddings.Upsert(ctx, embedding)
}

func (a *AssistantService) RemovePostIndex(ctx context.Context, postID string) {
	if err := a.embeddings.DeleteByPostID(ctx, postID); err != nil {
		log.Printf("embedding cleanup for post %s failed: %v", postID, err)
	}
}

func (a *AssistantService) buildSystemPrompt(ctx context.Context, message string) string {
	base := `Você é o assistente do mural de classificados. Responda em português,
de forma curta e simpática. Use os anúncios abaixo quando forem relevantes
para indicar profissionais; se nenhum servir, diga que não encontrou.`

	vector, err := a.client.GetEmbedding(ctx, message)
	if err != nil {
		log.Printf("query embedding failed, replying without retrieval: %v", err)
		return base
	}

	matches, err := a.embeddings.SearchByVector(ctx, vector, retrievalLimit)
	if err != nil {
		log.Printf("embedding search failed, replying without retrieval: %v", err)
		return base
	}
	if len(matches) == 0 {
		return base
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\n\nAnúncios disponíveis:\n")
	for i := range matches {
		sb.WriteString(fmt.Sprintf("- [%s] %s por %s: %s\n",
			matches[i].Category, matches[i].Title, matches[i].AuthorName, matches[i].Body))
	}
	return sb.String()
}

func extractKeywords(post *db_models.Post) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(post.Title + " " + post.Category)) {
		if len(word) < 4 || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}
