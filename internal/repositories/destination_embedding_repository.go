package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripmate/internal/models/db_models"
)

type DestinationEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.DestinationEmbedding) error
	FindNearest(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.DestinationEmbedding, error)
}

type destinationEmbeddingRepository struct {
	db *gorm.DB
}

func NewDestinationEmbeddingRepository(db *gorm.DB) DestinationEmbeddingRepository {
	return &destinationEmbeddingRepository{db: db}
}

func (r *destinationEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.DestinationEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "destination_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding", "updated_at"}),
		}).
		Create(embedding).Error
}

func (r *destinationEmbeddingRepository) FindNearest(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.DestinationEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}
	var embeddings []db_models.DestinationEmbedding
	err := r.db.WithContext(ctx).
		Order(clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vector}}).
		Limit(limit).
		Find(&embeddings).Error
	if err != nil {
		return nil, err
	}
	return embeddings, nil
}
