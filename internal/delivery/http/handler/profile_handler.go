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

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type upsertProfileRequest struct {
	UserID    string   `json:"userId"`
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Password  *string  `json:"password"`
	Courses   []string `json:"courses"`
	Interests []string `json:"interests"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Upsert)
	r.Get("/", h.Get)
}

func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	var req upsertProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Upsert(c.Context(), usecase.UpsertProfileInput{
		UserID:    req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Courses:   req.Courses,
		Interests: req.Interests,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "userId is required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromProfile(p))
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId is required", nil, nil)
	}

	p, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(p))
}
