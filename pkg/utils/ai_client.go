package utils

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"anuncia/internal/models/request_models"
)

// AssistantClientInterface is the one-shot boundary to the generative
// provider. No retries: a failed call surfaces as an error and the service
// layer degrades to an apology string.
type AssistantClientInterface interface {
	// GenerateJSON asks the model for a JSON-only completion.
	GenerateJSON(ctx context.Context, prompt string) (string, error)

	// ChatReply continues a widget conversation grounded on systemPrompt.
	ChatReply(ctx context.Context, systemPrompt string, history []request_models.ChatTurn, message string) (string, error)

	// GetEmbedding maps text into the ad retrieval vector space.
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)

	Close() error
}

// EmbeddingDimensions is fixed by the ad_embeddings vector(1536) column.
const EmbeddingDimensions = 1536
