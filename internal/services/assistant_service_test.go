package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/pkg/utils"
)

func TestGenerateAdCopyParsesModelJSON(t *testing.T) {
	ctx := context.Background()
	client := new(MockAssistantClient)
	svc := NewAssistantService(client, new(MockAdEmbeddingRepository))

	client.On("GenerateJSON", ctx, mock.AnythingOfType("string")).
		Return(`{"title": "Eletricista de confiança", "content": "Instalações e reparos."}`, nil)

	resp, err := svc.GenerateAdCopy(ctx, request_models.AdCopyRequest{
		Profession: "Eletricista",
		Keywords:   []string{"instalações", "reparos"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Eletricista de confiança", resp.Title)
	assert.Equal(t, "Instalações e reparos.", resp.Content)
}

func TestGenerateAdCopyProviderFailure(t *testing.T) {
	ctx := context.Background()
	client := new(MockAssistantClient)
	svc := NewAssistantService(client, new(MockAdEmbeddingRepository))

	client.On("GenerateJSON", ctx, mock.AnythingOfType("string")).Return("", errors.New("quota exceeded"))

	_, err := svc.GenerateAdCopy(ctx, request_models.AdCopyRequest{
		Profession: "Pedreiro", Keywords: []string{"reformas"},
	})
	assert.ErrorIs(t, err, utils.ErrAssistantFailure)
}

func TestGenerateAdCopyUnparseableResponse(t *testing.T) {
	ctx := context.Background()
	client := new(MockAssistantClient)
	svc := NewAssistantService(client, new(MockAdEmbeddingRepository))

	client.On("GenerateJSON", ctx, mock.AnythingOfType("string")).Return("desculpe, não posso", nil)

	_, err := svc.GenerateAdCopy(ctx, request_models.AdCopyRequest{
		Profession: "Pedreiro", Keywords: []string{"reformas"},
	})
	assert.ErrorIs(t, err, utils.ErrAssistantFailure)
}

func TestChatReplyDegradesToApologyOnProviderFailure(t *testing.T) {
	ctx := context.Background()
	client := new(MockAssistantClient)
	embeddings := new(MockAdEmbeddingRepository)
	svc := NewAssistantService(client, embeddings)

	client.On("GetEmbedding", ctx, "preciso de um encanador").Return(pgvector.NewVector([]float32{0.1}), nil)
	embeddings.On("SearchByVector", ctx, mock.Anything, retrievalLimit).Return([]db_models.AdEmbedding{}, nil)
	client.On("ChatReply", ctx, mock.AnythingOfType("string"), mock.Anything, "preciso de um encanador").
		Return("", errors.New("deadline exceeded"))

	resp, err := svc.ChatReply(ctx, request_models.ChatRequest{Message: "preciso de um encanador"})
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, resp.Reply)
}

func TestChatReplyGroundsOnRetrievedAds(t *testing.T) {
	ctx := context.Background()
	client := new(MockAssistantClient)
	embeddings := new(MockAdEmbeddingRepository)
	svc := NewAssistantService(client, embeddings)

	matches := []db_models.AdEmbedding{{
		PostID:     uuid.NewString(),
		Title:      "Encanador 24h",
		Body:       "Atendo toda a região.",
		Category:   "services",
		AuthorName: "José",
	}}
	client.On("GetEmbedding", ctx, "preciso de um encanador").Return(pgvector.NewVector([]float32{0.1}), nil)
	embeddings.On("SearchByVector", ctx, mock.Anything, retrievalLimit).Return(matches, nil)

	var capturedPrompt string
	client.On("ChatReply", ctx, mock.AnythingOfType("string"), mock.Anything, "preciso de um encanador").
		Run(func(args mock.Arguments) { capturedPrompt = args.String(1) }).
		Return("O José atende 24h!", nil)

	resp, err := svc.ChatReply(ctx, request_models.ChatRequest{Message: "preciso de um encanador"})
	require.NoError(t, err)
	assert.Equal(t, "O José atende 24h!", resp.Reply)
	assert.Contains(t, capturedPrompt, "Encanador 24h")
	assert.Contains(t, capturedPrompt, "José")
}

func TestChatReplyStillAnswersWhenRetrievalIsDown(t *testing.T) {
	ctx := context.Background()
	client := new(MockAssistantClient)
	embeddings := new(MockAdEmbeddingRepository)
	svc := NewAssistantService(client, embeddings)

	client.On("GetEmbedding", ctx, "oi").Return(pgvector.NewVector(nil), errors.New("embedding down"))
	client.On("ChatReply", ctx, mock.AnythingOfType("string"), mock.Anything, "oi").Return("Olá!", nil)

	resp, err := svc.ChatReply(ctx, request_models.ChatRequest{Message: "oi"})
	require.NoError(t, err)
	assert.Equal(t, "Olá!", resp.Reply)
	embeddings.AssertNotCalled(t, "SearchByVector", ctx, mock.Anything, retrievalLimit)
}

func TestIndexPostStoresEmbeddingWithKeywords(t *testing.T) {
	ctx := context.Background()
	client := new(MockAssistantClient)
	embeddings := new(MockAdEmbeddingRepository)
	svc := NewAssistantService(client, embeddings)

	post := &db_models.Post{
		BaseModel:        db_models.BaseModel{ID: uuid.New()},
		AuthorName:       "Maria",
		AuthorProfession: "Eletricista",
		Category:         "services",
		Title:            "Instalações elétricas residenciais",
		Body:             "Orçamento grátis.",
	}
	client.On("GetEmbedding", ctx, mock.AnythingOfType("string")).Return(pgvector.NewVector([]float32{0.5}), nil)

	var stored *db_models.AdEmbedding
	embeddings.On("Upsert", ctx, mock.AnythingOfType("*db_models.AdEmbedding")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*db_models.AdEmbedding) }).
		Return(nil)

	require.NoError(t, svc.IndexPost(ctx, post))
	require.NotNil(t, stored)
	assert.Equal(t, post.ID.String(), stored.PostID)
	assert.Contains(t, stored.Keywords, "instalações")
	assert.NotContains(t, stored.Keywords, "de")
}
