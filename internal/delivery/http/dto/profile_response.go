package dto

import (
	"time"

	"colab/internal/domain/profile"
)

type ProfileResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Courses   []string  `json:"courses"`
	Interests []string  `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProfile(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Email:     p.Email,
		Courses:   p.Courses,
		Interests: p.Interests,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
