package usecase

import (
	"context"
	"strings"

	"colab/internal/domain/matching"
	"colab/internal/domain/profile"
)

type MatchingUsecase interface {
	Rank(ctx context.Context, userID string) ([]matching.Match, error)
}

type Matching struct {
	profiles profile.Repository
	cache    MatchCache
}

func NewMatchingUsecase(profiles profile.Repository, cache MatchCache) *Matching {
	return &Matching{profiles: profiles, cache: cache}
}

// Rank loads the target profile plus every other profile and scores them in
// memory. Read-only; results are cached briefly per user.
func (u *Matching) Rank(ctx context.Context, userID string) ([]matching.Match, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	key := matchesCacheKey(userID)
	if u.cache != nil {
		var cached []matching.Match
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	target, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	others, err := u.profiles.ListOthers(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates := make([]matching.Candidate, 0, len(others))
	for _, p := range others {
		candidates = append(candidates, toCandidate(p))
	}

	matches := matching.Rank(toCandidate(target), candidates)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, matches, matchCacheTTL)
	}

	return matches, nil
}

func toCandidate(p profile.Profile) matching.Candidate {
	email := ""
	if p.Email != nil {
		email = *p.Email
	}
	return matching.Candidate{
		UserID:    p.UserID,
		Email:     email,
		Courses:   p.Courses,
		Interests: p.Interests,
		CreatedAt: p.CreatedAt,
	}
}
