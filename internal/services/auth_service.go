package services

import (
	"context"

	"torami_backend/internal/auth"
	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken: token,
		User:        user,
	}, nil
}
