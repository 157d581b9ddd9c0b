package dto

import (
	"time"

	"colab/internal/repository"
)

type MessageResponse struct {
	ID           int64     `json:"id"`
	ConnectionID int64     `json:"connection_id"`
	SenderID     string    `json:"sender_id"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromMessage(m repository.Message) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		ConnectionID: m.ConnectionID,
		SenderID:     m.SenderID,
		Message:      m.Body,
		CreatedAt:    m.CreatedAt,
	}
}

func FromMessages(items []repository.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMessage(m))
	}
	return out
}
