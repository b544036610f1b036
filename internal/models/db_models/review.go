package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	AccountID     uuid.UUID    `json:"account_id"`
	Account       *Account     `json:"account,omitempty"`
	DestinationID uuid.UUID    `json:"destination_id"`
	Destination   *Destination `json:"destination,omitempty"`
	Rating        int          `json:"rating"`
	Comment       string       `json:"comment"`
}
