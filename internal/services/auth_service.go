package services

import (
	"context"
	"errors"
	"fmt"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
	"hospital-management/internal/domain/repositories"
	"hospital-management/internal/security"

	"go.uber.org/zap"
)

type AuthServiceImpl struct {
	userRepo repositories.UserRepositoryContract
	digester security.Digester
	logger   *zap.Logger
}

func NewAuthService(repo repositories.UserRepositoryContract, digester security.Digester, logger *zap.Logger) AuthServiceContract {
	return &AuthServiceImpl{
		userRepo: repo,
		digester: digester,
		logger:   logger,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dtos.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		s.logger.Warn("login rejected", zap.String("username", req.Username))
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if !s.digester.Verify(user.Password, req.Password) {
		s.logger.Warn("login rejected", zap.String("username", req.Username))
		return "", ErrInvalidCredentials
	}
	s.logger.Info("login accepted", zap.String("username", user.Username), zap.String("role", user.Role))
	return user.Role, nil
}

func (s *AuthServiceImpl) AddUser(ctx context.Context, username, password, role string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	digest, err := s.digester.Digest(password)
	if err != nil {
		return fmt.Errorf("digest password: %w", err)
	}
	user := &entities.User{Username: username, Password: digest, Role: role}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to add user", zap.String("username", username), zap.Error(err))
		return fmt.Errorf("add user %s: %w", username, err)
	}
	s.logger.Info("user added", zap.String("username", username), zap.String("role", role))
	return nil
}
