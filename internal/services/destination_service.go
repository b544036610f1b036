package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type DestinationServiceInterface interface {
	List(ctx context.Context, search string) ([]db_models.Destination, error)
	ListTrending(ctx context.Context) ([]db_models.Destination, error)
	Get(ctx context.Context, id string) (*db_models.Destination, error)
	Create(ctx context.Context, req request_models.DestinationRequest) (*db_models.Destination, error)
	Update(ctx context.Context, id string, req request_models.DestinationRequest) (*db_models.Destination, error)
	Delete(ctx context.Context, id string) error
}

type DestinationService struct {
	destinations repositories.DestinationRepository
	discovery    DiscoveryServiceInterface
}

func NewDestinationService(
	destinations repositories.DestinationRepository,
	discovery DiscoveryServiceInterface,
) DestinationServiceInterface {
	return &DestinationService{
		destinations: destinations,
		discovery:    discovery,
	}
}

func (s *DestinationService) List(ctx context.Context, search string) ([]db_models.Destination, error) {
	destinations, err := s.destinations.List(ctx, search)
	if err != nil {
		log.Printf("Error listing destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return destinations, nil
}

func (s *DestinationService) ListTrending(ctx context.Context) ([]db_models.Destination, error) {
	destinations, err := s.destinations.ListTrending(ctx)
	if err != nil {
		log.Printf("Error listing trending destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return destinations, nil
}

func (s *DestinationService) Get(ctx context.Context, id string) (*db_models.Destination, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}
	destination, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrRecordNotFound
	}
	return destination, nil
}

func (s *DestinationService) Create(ctx context.Context, req request_models.DestinationRequest) (*db_models.Destination, error) {
	destination := &db_models.Destination{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		IsTrending:  req.IsTrending,
	}
	if err := s.destinations.Insert(ctx, destination); err != nil {
		log.Printf("Error creating destination %s: %v", req.Name, err)
		return nil, utils.ErrDatabaseError
	}
	s.reindex(ctx, destination)
	return destination, nil
}

func (s *DestinationService) Update(ctx context.Context, id string, req request_models.DestinationRequest) (*db_models.Destination, error) {
	destination, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	destination.Name = req.Name
	destination.Description = req.Description
	destination.Location = req.Location
	destination.ImageURL = req.ImageURL
	destination.IsTrending = req.IsTrending

	if err := s.destinations.Update(ctx, destination); err != nil {
		log.Printf("Error updating destination %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	s.reindex(ctx, destination)
	return destination, nil
}

func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidInput
	}
	if err := s.destinations.Delete(ctx, id); err != nil {
		log.Printf("Error deleting destination %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

// reindex keeps the semantic index in step with catalog writes. An
// indexing failure is logged, not surfaced; search just lags.
func (s *DestinationService) reindex(ctx context.Context, destination *db_models.Destination) {
	if err := s.discovery.IndexDestination(ctx, destination); err != nil {
		log.Printf("Error indexing destination %s: %v", destination.Name, err)
	}
}
