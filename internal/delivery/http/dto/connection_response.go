package dto

import (
	"time"

	"colab/internal/domain/connection"
	"colab/internal/repository"
)

type ConnectionResponse struct {
	ID          int64     `json:"id"`
	RequesterID string    `json:"requester_id"`
	RecipientID string    `json:"recipient_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ConnectionWithPeerResponse struct {
	ConnectionResponse
	PeerID   string `json:"peer_id"`
	PeerName string `json:"peer_name"`
}

func FromConnection(c connection.Connection) ConnectionResponse {
	return ConnectionResponse{
		ID:          c.ID,
		RequesterID: c.RequesterID,
		RecipientID: c.RecipientID,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromConnectionsWithPeer(items []repository.ConnectionWithPeer) []ConnectionWithPeerResponse {
	out := make([]ConnectionWithPeerResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ConnectionWithPeerResponse{
			ConnectionResponse: FromConnection(it.Connection),
			PeerID:             it.PeerID,
			PeerName:           it.PeerName,
		})
	}
	return out
}
