package services

import (
	"context"
	"fmt"
	"log"

	"tripmate/internal/models/db_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const defaultSimilarLimit = 5

// DiscoveryServiceInterface maintains destination embeddings and
// answers free-text "places like this" queries over them.
type DiscoveryServiceInterface interface {
	IndexDestination(ctx context.Context, destination *db_models.Destination) error
	SearchSimilar(ctx context.Context, query string, limit int) ([]db_models.Destination, error)
}

type DiscoveryService struct {
	embeddings   repositories.DestinationEmbeddingRepository
	destinations repositories.DestinationRepository
	ai           utils.AIClientInterface
}

func NewDiscoveryService(
	embeddings repositories.DestinationEmbeddingRepository,
	destinations repositories.DestinationRepository,
	ai utils.AIClientInterface,
) DiscoveryServiceInterface {
	return &DiscoveryService{
		embeddings:   embeddings,
		destinations: destinations,
		ai:           ai,
	}
}

func (s *DiscoveryService) IndexDestination(ctx context.Context, destination *db_models.Destination) error {
	text := fmt.Sprintf("%s. %s. Located in %s.",
		destination.Name, destination.Description, destination.Location)

	vector, err := s.ai.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("Error embedding destination %s: %v", destination.Name, err)
		return err
	}

	return s.embeddings.Upsert(ctx, &db_models.DestinationEmbedding{
		DestinationID: destination.ID,
		Embedding:     vector,
	})
}

func (s *DiscoveryService) SearchSimilar(ctx context.Context, query string, limit int) ([]db_models.Destination, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	vector, err := s.ai.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Error embedding search query: %v", err)
		return nil, err
	}

	nearest, err := s.embeddings.FindNearest(ctx, vector, limit)
	if err != nil {
		log.Printf("Error searching embeddings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]db_models.Destination, 0, len(nearest))
	for _, e := range nearest {
		destination, err := s.destinations.GetByID(ctx, e.DestinationID.String())
		if err != nil {
			log.Printf("Error loading destination %s: %v", e.DestinationID, err)
			continue
		}
		if destination != nil {
			results = append(results, *destination)
		}
	}
	return results, nil
}
