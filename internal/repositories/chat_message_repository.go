package repositories

import (
	"context"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type ChatMessageRepository interface {
	ListByAccount(ctx context.Context, accountID string) ([]db_models.ChatMessage, error)
	Insert(ctx context.Context, message *db_models.ChatMessage) error
}

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatMessageRepository) Insert(ctx context.Context, message *db_models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
