package serviceImp

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
	"lifeplan/pkg/logger"
	repo "lifeplan/pkg/user/repository"
	"lifeplan/pkg/user/service"
)

type userSvc struct{ r repo.UserRepository }

func NewUserService(r repo.UserRepository) service.UserService { return &userSvc{r} }

func (s *userSvc) Login(ctx context.Context, email string) (*entities.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	u, err := s.r.FindByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	u = &entities.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  strings.SplitN(email, "@", 2)[0],
	}
	if err := s.r.Create(ctx, u); err != nil {
		// a concurrent login may have created the same email
		if existing, findErr := s.r.FindByEmail(ctx, email); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	logger.Info("user created", "user", u.ID)
	return u, nil
}

func (s *userSvc) Get(ctx context.Context, id string) (*entities.User, error) {
	return s.r.FindByID(ctx, id)
}

func (s *userSvc) Lookup(ctx context.Context, email string) (*entities.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return s.r.FindByEmail(ctx, email)
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperr.Invalid("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperr.Invalid("email %q is not valid", raw)
	}
	return email, nil
}
