package handler

import (
	"errors"
	"strconv"

	"colab/internal/delivery/http/dto"
	"colab/internal/delivery/http/middleware"
	"colab/internal/domain/connection"
	"colab/internal/pkg/response"
	"colab/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ConnectionHandler struct {
	uc usecase.ConnectionUsecase
}

type connectionRequest struct {
	RequesterID string `json:"requesterId"`
	RecipientID string `json:"recipientId"`
}

func NewConnectionHandler(uc usecase.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{uc: uc}
}

func (h *ConnectionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/request", h.Request)
	r.Get("/", h.List)
	r.Post("/:id/accept", h.Accept)
	r.Post("/:id/reject", h.Reject)
}

func (h *ConnectionHandler) Request(c fiber.Ctx) error {
	var req connectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	conn, err := h.uc.Request(c.Context(), req.RequesterID, req.RecipientID)
	if err != nil {
		return mapConnectionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromConnection(conn))
}

func (h *ConnectionHandler) List(c fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId is required", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID, c.Query("status"))
	if err != nil {
		return mapConnectionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromConnectionsWithPeer(items))
}

func (h *ConnectionHandler) Accept(c fiber.Ctx) error {
	id, err := connectionIDFromParams(c)
	if err != nil {
		return err
	}

	conn, err := h.uc.Accept(c.Context(), id)
	if err != nil {
		return mapConnectionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromConnection(conn))
}

func (h *ConnectionHandler) Reject(c fiber.Ctx) error {
	id, err := connectionIDFromParams(c)
	if err != nil {
		return err
	}

	conn, err := h.uc.Reject(c.Context(), id)
	if err != nil {
		return mapConnectionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromConnection(conn))
}

// A non-numeric id can never name a row, so it reads as not found rather
// than bad request.
func connectionIDFromParams(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusNotFound, "Connection not found", nil, err)
	}
	return id, nil
}

func mapConnectionUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid connection request", nil, err)
	case errors.Is(err, connection.ErrDuplicatePair):
		return middleware.NewAppError(fiber.StatusConflict, "Connection request already exists", nil, err)
	case errors.Is(err, connection.ErrAlreadyResolved):
		return middleware.NewAppError(fiber.StatusConflict, "Connection already resolved", nil, err)
	case errors.Is(err, connection.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Connection not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
