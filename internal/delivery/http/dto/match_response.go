package dto

import "colab/internal/domain/matching"

type MatchResponse struct {
	UserID          string   `json:"user_id"`
	Email           string   `json:"email"`
	Courses         []string `json:"courses"`
	Interests       []string `json:"interests"`
	SharedCourses   []string `json:"shared_courses"`
	SharedInterests []string `json:"shared_interests"`
	MatchScore      int      `json:"match_score"`
}

func FromMatches(matches []matching.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchResponse{
			UserID:          m.UserID,
			Email:           m.Email,
			Courses:         m.Courses,
			Interests:       m.Interests,
			SharedCourses:   m.SharedCourses,
			SharedInterests: m.SharedInterests,
			MatchScore:      m.Score,
		})
	}
	return out
}
