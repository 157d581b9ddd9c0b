package connection

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

var (
	ErrNotFound        = errors.New("connection not found")
	ErrDuplicatePair   = errors.New("connection already exists for pair")
	ErrAlreadyResolved = errors.New("connection already resolved")
)

type Connection struct {
	ID          int64
	RequesterID string
	RecipientID string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Counterparty returns the other participant from userID's point of view.
func (c Connection) Counterparty(userID string) string {
	if c.RequesterID == userID {
		return c.RecipientID
	}
	return c.RequesterID
}

// IsParticipant reports whether userID is one of the two endpoints.
func (c Connection) IsParticipant(userID string) bool {
	return c.RequesterID == userID || c.RecipientID == userID
}
