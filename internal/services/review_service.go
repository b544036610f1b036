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

type ReviewServiceInterface interface {
	Create(ctx context.Context, accountID string, req request_models.CreateReviewRequest) (*db_models.Review, error)
	ListByDestination(ctx context.Context, destinationID string) ([]db_models.Review, error)
}

type ReviewService struct {
	reviews      repositories.ReviewRepository
	destinations repositories.DestinationRepository
}

func NewReviewService(
	reviews repositories.ReviewRepository,
	destinations repositories.DestinationRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviews:      reviews,
		destinations: destinations,
	}
}

func (s *ReviewService) Create(ctx context.Context, accountID string, req request_models.CreateReviewRequest) (*db_models.Review, error) {
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.ErrInvalidInput
	}

	destination, err := s.destinations.GetByID(ctx, req.DestinationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrRecordNotFound
	}

	review := &db_models.Review{
		AccountID:     accountUUID,
		DestinationID: destination.ID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		log.Printf("Error creating review for destination %s: %v", req.DestinationID, err)
		return nil, utils.ErrDatabaseError
	}
	return review, nil
}

func (s *ReviewService) ListByDestination(ctx context.Context, destinationID string) ([]db_models.Review, error) {
	reviews, err := s.reviews.ListByDestination(ctx, destinationID)
	if err != nil {
		log.Printf("Error listing reviews for destination %s: %v", destinationID, err)
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}
