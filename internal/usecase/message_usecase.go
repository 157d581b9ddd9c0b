package usecase

import (
	"context"
	"errors"
	"strings"

	"colab/internal/domain/connection"
	"colab/internal/repository"
)

var (
	// ErrNotParticipant rejects posting into someone else's conversation.
	ErrNotParticipant = errors.New("sender is not a participant of the connection")
	// ErrConnectionNotAccepted rejects posting before the recipient accepts.
	ErrConnectionNotAccepted = errors.New("connection is not accepted")
)

type MessageUsecase interface {
	Append(ctx context.Context, connectionID int64, senderID, body string) (repository.Message, error)
	History(ctx context.Context, connectionID int64, readerID string) ([]repository.Message, error)
}

type Messages struct {
	repo        repository.MessageRepository
	connections repository.ConnectionRepository
}

func NewMessageUsecase(repo repository.MessageRepository, connections repository.ConnectionRepository) *Messages {
	return &Messages{repo: repo, connections: connections}
}

func (u *Messages) Append(ctx context.Context, connectionID int64, senderID, body string) (repository.Message, error) {
	senderID = strings.TrimSpace(senderID)
	if senderID == "" || strings.TrimSpace(body) == "" {
		return repository.Message{}, ErrInvalidInput
	}

	conn, err := u.connections.GetByID(ctx, connectionID)
	if err != nil {
		return repository.Message{}, err
	}
	if !conn.IsParticipant(senderID) {
		return repository.Message{}, ErrNotParticipant
	}
	if conn.Status != connection.StatusAccepted {
		return repository.Message{}, ErrConnectionNotAccepted
	}

	return u.repo.Append(ctx, connectionID, senderID, body)
}

// History has no pagination; the full log is returned in chronological order.
// Only participants may read it, regardless of the connection's state.
func (u *Messages) History(ctx context.Context, connectionID int64, readerID string) ([]repository.Message, error) {
	readerID = strings.TrimSpace(readerID)
	if readerID == "" {
		return nil, ErrInvalidInput
	}

	conn, err := u.connections.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.IsParticipant(readerID) {
		return nil, ErrNotParticipant
	}

	return u.repo.History(ctx, connectionID)
}
