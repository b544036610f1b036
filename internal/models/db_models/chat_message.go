package db_models

import "github.com/google/uuid"

type ChatMessage struct {
	BaseModel
	AccountID uuid.UUID `json:"account_id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
}
