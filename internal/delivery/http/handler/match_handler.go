package handler

import (
	"errors"

	"colab/internal/delivery/http/dto"
	"colab/internal/delivery/http/middleware"
	"colab/internal/domain/profile"
	"colab/internal/pkg/response"
	"colab/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetMatches)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId is required", nil, nil)
	}

	matches, err := h.uc.Rank(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "userId is required", nil, err)
		case errors.Is(err, profile.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User profile not found", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatches(matches))
}
