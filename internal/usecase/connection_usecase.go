package usecase

import (
	"context"
	"strings"

	"colab/internal/domain/connection"
	"colab/internal/repository"
)

type ConnectionUsecase interface {
	Request(ctx context.Context, requesterID, recipientID string) (connection.Connection, error)
	Accept(ctx context.Context, id int64) (connection.Connection, error)
	Reject(ctx context.Context, id int64) (connection.Connection, error)
	List(ctx context.Context, userID, statusFilter string) ([]repository.ConnectionWithPeer, error)
}

type Connections struct {
	repo repository.ConnectionRepository
}

func NewConnectionUsecase(repo repository.ConnectionRepository) *Connections {
	return &Connections{repo: repo}
}

func (u *Connections) Request(ctx context.Context, requesterID, recipientID string) (connection.Connection, error) {
	requesterID = strings.TrimSpace(requesterID)
	recipientID = strings.TrimSpace(recipientID)
	if requesterID == "" || recipientID == "" {
		return connection.Connection{}, ErrInvalidInput
	}
	if requesterID == recipientID {
		return connection.Connection{}, ErrInvalidInput
	}

	return u.repo.Create(ctx, requesterID, recipientID)
}

func (u *Connections) Accept(ctx context.Context, id int64) (connection.Connection, error) {
	return u.repo.Resolve(ctx, id, connection.StatusAccepted)
}

func (u *Connections) Reject(ctx context.Context, id int64) (connection.Connection, error) {
	return u.repo.Resolve(ctx, id, connection.StatusRejected)
}

func (u *Connections) List(ctx context.Context, userID, statusFilter string) ([]repository.ConnectionWithPeer, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	var status *connection.Status
	if statusFilter = strings.TrimSpace(statusFilter); statusFilter != "" {
		s := connection.Status(statusFilter)
		if !s.Valid() {
			return nil, ErrInvalidInput
		}
		status = &s
	}

	return u.repo.ListByUser(ctx, userID, status)
}
