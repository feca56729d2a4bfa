package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-health-tracker/internal/domain/apperr"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// errBadCredentials no distingue usuario inexistente de password incorrecto.
var errBadCredentials = fmt.Errorf("%w: invalid name or password", apperr.ErrAuth)

type Service struct {
	repo Repository
	now  func() time.Time
	cost int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		cost: bcrypt.DefaultCost,
	}
}

// SignUp registra un usuario nuevo. Nombre tomado => ErrConflict.
func (s *Service) SignUp(ctx context.Context, name, password string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, apperr.Validation("name is required")
	}
	if password == "" {
		return User{}, apperr.Validation("password is required")
	}

	_, err := s.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		return User{}, apperr.Conflict("name %q is already taken", name)
	case !errors.Is(err, apperr.ErrNotFound):
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// SignIn valida credenciales. Cualquier mismatch, incluidos campos vacíos, => ErrAuth.
func (s *Service) SignIn(ctx context.Context, name, password string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return User{}, errBadCredentials
	}

	u, err := s.repo.GetByName(ctx, name)
	if errors.Is(err, apperr.ErrNotFound) {
		return User{}, errBadCredentials
	}
	if err != nil {
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, errBadCredentials
	}
	return u, nil
}

// CurrentUser restaura la sesión: sin identidad o usuario borrado => nil, nil.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}
	u, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, apperr.NotFound("profile")
	}
	return s.repo.GetProfile(ctx, userID)
}

// ProfileInput: nil = no tocar.
type ProfileInput struct {
	Username  *string
	FullName  *string
	AvatarURL *string
}

// UpsertProfile crea el perfil en la primera escritura y lo actualiza después.
func (s *Service) UpsertProfile(ctx context.Context, userID string, in ProfileInput) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, apperr.Validation("user is required")
	}

	p, err := s.repo.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		p = Profile{ID: uuid.NewString(), UserID: userID}
	case err != nil:
		return Profile{}, err
	}

	if in.Username != nil {
		p.Username = strings.TrimSpace(*in.Username)
	}
	if in.FullName != nil {
		p.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.AvatarURL != nil {
		p.AvatarURL = strings.TrimSpace(*in.AvatarURL)
	}
	p.UpdatedAt = s.now()

	if err := s.repo.UpsertProfile(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
