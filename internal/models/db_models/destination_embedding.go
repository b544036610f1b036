package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type DestinationEmbedding struct {
	BaseModel
	DestinationID uuid.UUID       `gorm:"uniqueIndex" json:"destination_id"`
	Embedding     pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
}
