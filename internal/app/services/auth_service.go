package services

import (
	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
	"github.com/kerem/notesphere/internal/pkg/auth"
)

// DeveloperAuthService issues dashboard tokens against the configured
// developer password hash.
type DeveloperAuthService interface {
	Login(req *dto.DeveloperLoginRequest) (*dto.TokenResponse, error)
}

type developerAuthService struct {
	passwordHash string
	jwtService   *auth.JWTService
}

// NewDeveloperAuthService creates a new developer auth service instance
func NewDeveloperAuthService(passwordHash string, jwtService *auth.JWTService) DeveloperAuthService {
	return &developerAuthService{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

// Login checks the developer password and returns a signed token
func (s *developerAuthService) Login(req *dto.DeveloperLoginRequest) (*dto.TokenResponse, error) {
	if !auth.CheckPassword(s.passwordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateDeveloperToken()
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
