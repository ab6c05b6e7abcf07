package user

import (
	"context"
	"errors"

	"siddhartha-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id uint) (User, error)
}

type service struct {
	repo      Repository
	jwtSecret []byte
}

func NewService(repo Repository, jwtSecret []byte) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	if name == "" || email == "" || len(password) < 6 {
		return "", User{}, errors.New("name, email and a password of at least 6 characters are required")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, name, email, hashed)
	if err != nil {
		if !errors.Is(err, ErrEmailExists) {
			log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(s.jwtSecret, u)
	if err != nil {
		log.Error("failed to generate jwt", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("user registered", zap.Uint("user_id", u.ID), zap.String("email", email))

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(s.jwtSecret, u)
	if err != nil {
		return "", User{}, err
	}

	u.Password = ""
	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (User, error) {
	return s.repo.FindByID(ctx, id)
}
