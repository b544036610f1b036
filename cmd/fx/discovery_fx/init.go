package discovery_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingRepo,
	provideDiscoveryService)

func provideEmbeddingRepo(db *gorm.DB) repositories.DestinationEmbeddingRepository {
	return repositories.NewDestinationEmbeddingRepository(db)
}

func provideDiscoveryService(
	embeddings repositories.DestinationEmbeddingRepository,
	destinations repositories.DestinationRepository,
	ai utils.AIClientInterface,
) services.DiscoveryServiceInterface {
	return services.NewDiscoveryService(embeddings, destinations, ai)
}
