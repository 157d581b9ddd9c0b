package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"colab/internal/domain/profile"
	"colab/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidEmailDomain = errors.New("email must be from an educational institution")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
)

// Identity is who the caller is after the session gate, which may exist
// before any profile row does: a first-time login synthesizes a user id and
// nothing is persisted until profile setup.
type Identity struct {
	UserID     string
	Email      string
	Name       string
	HasProfile bool
}

type AuthUsecase interface {
	VerifyEmail(email string) error
	Login(ctx context.Context, email, password string) (Identity, string, error)
}

type Auth struct {
	profiles profile.Repository
	jwt      jwt.Service

	now func() time.Time
}

func NewAuthUsecase(profiles profile.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{profiles: profiles, jwt: jwtSvc, now: time.Now}
}

// VerifyEmail accepts any address that case-insensitively ends with ".edu".
func (u *Auth) VerifyEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidInput
	}
	if !strings.HasSuffix(strings.ToLower(email), ".edu") {
		return ErrInvalidEmailDomain
	}
	return nil
}

func (u *Auth) Login(ctx context.Context, email, password string) (Identity, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Identity{}, "", ErrInvalidInput
	}
	if err := u.VerifyEmail(email); err != nil {
		return Identity{}, "", err
	}

	p, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return u.transientIdentity(email)
		}
		return Identity{}, "", ErrInternal
	}

	if p.PasswordHash == nil || *p.PasswordHash == "" {
		return Identity{}, "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*p.PasswordHash), []byte(password)); err != nil {
		return Identity{}, "", ErrUnauthorized
	}

	id := Identity{
		UserID:     p.UserID,
		Email:      email,
		Name:       p.DisplayName(),
		HasProfile: true,
	}
	token, err := u.jwt.GenerateSessionToken(id.UserID, id.Email)
	if err != nil {
		return Identity{}, "", ErrInternal
	}
	return id, token, nil
}

// transientIdentity mints a user id for an email with no profile on file.
// Nothing is written; the id becomes durable only once profile setup runs.
func (u *Auth) transientIdentity(email string) (Identity, string, error) {
	localPart := email
	if at := strings.Index(email, "@"); at >= 0 {
		localPart = email[:at]
	}

	id := Identity{
		UserID:     localPart + "-" + strconv.FormatInt(u.now().UnixMilli(), 10),
		Email:      email,
		Name:       localPart,
		HasProfile: false,
	}
	token, err := u.jwt.GenerateSessionToken(id.UserID, id.Email)
	if err != nil {
		return Identity{}, "", ErrInternal
	}
	return id, token, nil
}
