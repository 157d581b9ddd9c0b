package usecase

import (
	"context"
	"errors"
	"testing"

	"colab/internal/domain/connection"
	"colab/internal/repository"
)

type mockConnectionRepo struct {
	created   []connection.Connection
	createErr error

	byID       map[int64]connection.Connection
	resolveErr error

	listed  []repository.ConnectionWithPeer
	listErr error

	gotStatus *connection.Status
}

func (m *mockConnectionRepo) Create(_ context.Context, requesterID, recipientID string) (connection.Connection, error) {
	if m.createErr != nil {
		return connection.Connection{}, m.createErr
	}
	c := connection.Connection{ID: int64(len(m.created) + 1), RequesterID: requesterID, RecipientID: recipientID, Status: connection.StatusPending}
	m.created = append(m.created, c)
	return c, nil
}

func (m *mockConnectionRepo) GetByID(_ context.Context, id int64) (connection.Connection, error) {
	c, ok := m.byID[id]
	if !ok {
		return connection.Connection{}, connection.ErrNotFound
	}
	return c, nil
}

func (m *mockConnectionRepo) Resolve(_ context.Context, id int64, status connection.Status) (connection.Connection, error) {
	if m.resolveErr != nil {
		return connection.Connection{}, m.resolveErr
	}
	c, ok := m.byID[id]
	if !ok {
		return connection.Connection{}, connection.ErrNotFound
	}
	if c.Status != connection.StatusPending {
		return connection.Connection{}, connection.ErrAlreadyResolved
	}
	c.Status = status
	m.byID[id] = c
	return c, nil
}

func (m *mockConnectionRepo) ListByUser(_ context.Context, _ string, status *connection.Status) ([]repository.ConnectionWithPeer, error) {
	m.gotStatus = status
	return m.listed, m.listErr
}

func TestConnectionUsecase_Request_InvalidInput(t *testing.T) {
	uc := NewConnectionUsecase(&mockConnectionRepo{})

	cases := []struct {
		name        string
		requesterID string
		recipientID string
	}{
		{"empty requester", "", "bob-1"},
		{"empty recipient", "alice-1", ""},
		{"self connection", "alice-1", "alice-1"},
		{"whitespace only", "   ", "bob-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Request(context.Background(), tc.requesterID, tc.recipientID)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestConnectionUsecase_Request_Success(t *testing.T) {
	repo := &mockConnectionRepo{}
	uc := NewConnectionUsecase(repo)

	c, err := uc.Request(context.Background(), "alice-1", "bob-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Status != connection.StatusPending {
		t.Fatalf("new connection must be pending, got %s", c.Status)
	}
	if c.RequesterID != "alice-1" || c.RecipientID != "bob-1" {
		t.Fatalf("unexpected row: %+v", c)
	}
}

func TestConnectionUsecase_Request_DuplicatePassthrough(t *testing.T) {
	uc := NewConnectionUsecase(&mockConnectionRepo{createErr: connection.ErrDuplicatePair})

	_, err := uc.Request(context.Background(), "alice-1", "bob-1")
	if !errors.Is(err, connection.ErrDuplicatePair) {
		t.Fatalf("expected ErrDuplicatePair, got %v", err)
	}
}

func TestConnectionUsecase_Accept(t *testing.T) {
	repo := &mockConnectionRepo{byID: map[int64]connection.Connection{
		7: {ID: 7, RequesterID: "alice-1", RecipientID: "bob-1", Status: connection.StatusPending},
	}}
	uc := NewConnectionUsecase(repo)

	c, err := uc.Accept(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Status != connection.StatusAccepted {
		t.Fatalf("expected accepted, got %s", c.Status)
	}

	// A second transition out of a resolved row is a conflict.
	if _, err := uc.Reject(context.Background(), 7); !errors.Is(err, connection.ErrAlreadyResolved) {
		t.Fatalf("expected ErrAlreadyResolved, got %v", err)
	}
}

func TestConnectionUsecase_Accept_NotFound(t *testing.T) {
	uc := NewConnectionUsecase(&mockConnectionRepo{byID: map[int64]connection.Connection{}})

	if _, err := uc.Accept(context.Background(), 99); !errors.Is(err, connection.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConnectionUsecase_Reject(t *testing.T) {
	repo := &mockConnectionRepo{byID: map[int64]connection.Connection{
		3: {ID: 3, RequesterID: "alice-1", RecipientID: "bob-1", Status: connection.StatusPending},
	}}
	uc := NewConnectionUsecase(repo)

	c, err := uc.Reject(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Status != connection.StatusRejected {
		t.Fatalf("expected rejected, got %s", c.Status)
	}
}

func TestConnectionUsecase_List(t *testing.T) {
	repo := &mockConnectionRepo{listed: []repository.ConnectionWithPeer{
		{Connection: connection.Connection{ID: 1}, PeerID: "bob-1", PeerName: "Bob"},
	}}
	uc := NewConnectionUsecase(repo)

	items, err := uc.List(context.Background(), "alice-1", "pending")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if repo.gotStatus == nil || *repo.gotStatus != connection.StatusPending {
		t.Fatalf("status filter not forwarded: %v", repo.gotStatus)
	}
}

func TestConnectionUsecase_List_Validation(t *testing.T) {
	uc := NewConnectionUsecase(&mockConnectionRepo{})

	if _, err := uc.List(context.Background(), "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing userId, got %v", err)
	}
	if _, err := uc.List(context.Background(), "alice-1", "bogus"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad status, got %v", err)
	}
}
