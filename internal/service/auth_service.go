package service

import (
	"errors"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/repository"
	"classroom-fund-registry/pkg/utils"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Authenticate verifies credentials against the stored salted hash.
// Both an unknown email and a wrong password return the same
// ErrInvalidCredentials so the existence of an account is never
// revealed. Only active users can authenticate.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindActiveUserByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
