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

type ChatHandler struct {
	uc usecase.MessageUsecase
}

type sendMessageRequest struct {
	SenderID string `json:"senderId"`
	Message  string `json:"message"`
}

func NewChatHandler(uc usecase.MessageUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:connectionId/messages", h.Send)
	r.Get("/:connectionId/messages", h.History)
}

func (h *ChatHandler) Send(c fiber.Ctx) error {
	connectionID, err := strconv.ParseInt(c.Params("connectionId"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid connection id", nil, err)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	msg, err := h.uc.Append(c.Context(), connectionID, req.SenderID, req.Message)
	if err != nil {
		return mapMessageUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromMessage(msg))
}

func (h *ChatHandler) History(c fiber.Ctx) error {
	connectionID, err := strconv.ParseInt(c.Params("connectionId"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid connection id", nil, err)
	}

	readerID, _ := c.Locals(middleware.CtxUserIDKey).(string)

	msgs, err := h.uc.History(c.Context(), connectionID, readerID)
	if err != nil {
		return mapMessageUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMessages(msgs))
}

func mapMessageUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "senderId and message are required", nil, err)
	case errors.Is(err, usecase.ErrNotParticipant):
		return middleware.NewAppError(fiber.StatusForbidden, "Not a participant of this connection", nil, err)
	case errors.Is(err, usecase.ErrConnectionNotAccepted):
		return middleware.NewAppError(fiber.StatusConflict, "Connection is not accepted", nil, err)
	case errors.Is(err, connection.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Connection not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
