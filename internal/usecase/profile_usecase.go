package usecase

import (
	"context"
	"strings"

	"colab/internal/domain/profile"

	"golang.org/x/crypto/bcrypt"
)

type UpsertProfileInput struct {
	UserID    string
	Name      *string
	Email     *string
	Password  *string
	Courses   []string
	Interests []string
}

type ProfileUsecase interface {
	Upsert(ctx context.Context, in UpsertProfileInput) (profile.Profile, error)
	Get(ctx context.Context, userID string) (profile.Profile, error)
}

type Profiles struct {
	repo  profile.Repository
	cache MatchCache
}

func NewProfileUsecase(repo profile.Repository, cache MatchCache) *Profiles {
	return &Profiles{repo: repo, cache: cache}
}

// Upsert creates or fully replaces the profile keyed by UserID. Course and
// interest lists are taken as submitted, never merged with the stored ones.
func (u *Profiles) Upsert(ctx context.Context, in UpsertProfileInput) (profile.Profile, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return profile.Profile{}, ErrInvalidInput
	}

	p := profile.Profile{
		UserID:    userID,
		Name:      in.Name,
		Email:     in.Email,
		Courses:   emptyIfNil(in.Courses),
		Interests: emptyIfNil(in.Interests),
	}

	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return profile.Profile{}, ErrInternal
		}
		h := string(hash)
		p.PasswordHash = &h
	}

	stored, err := u.repo.Upsert(ctx, p)
	if err != nil {
		return profile.Profile{}, err
	}

	if u.cache != nil {
		// Stale rankings are tolerated for at most the cache TTL; only the
		// editing user's own entry is dropped eagerly.
		_ = u.cache.Delete(ctx, matchesCacheKey(userID))
	}

	return sanitizeProfile(stored), nil
}

func (u *Profiles) Get(ctx context.Context, userID string) (profile.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile.Profile{}, ErrInvalidInput
	}

	p, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	return sanitizeProfile(p), nil
}

func sanitizeProfile(p profile.Profile) profile.Profile {
	p.PasswordHash = nil
	return p
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
