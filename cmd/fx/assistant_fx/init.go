package assistant_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"anuncia/internal/config"
	"anuncia/internal/repositories"
	"anuncia/internal/services"
	"anuncia/pkg/utils"
)

var Module = fx.Provide(
	provideAssistantClient, provideAssistantService)

func provideAssistantClient(lc fx.Lifecycle, cfg *config.Config) utils.AssistantClientInterface {
	var client utils.AssistantClientInterface

	switch cfg.AIProvider {
	case "openai":
		client = utils.NewOpenAIAssistantClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		gemini, err := utils.NewGeminiAssistantClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to init Gemini client: %v", err)
		}
		client = gemini
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client
}

func provideAssistantService(client utils.AssistantClientInterface, embeddings repositories.AdEmbeddingRepository) services.AssistantServiceInterface {
	return services.NewAssistantService(client, embeddings)
}
