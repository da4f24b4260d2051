package service

import (
	"errors"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req dto.RefreshRequest) (*dto.TokenPairResponse, error)
	Me(userID string) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Login: user lookup failed")
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	if err := s.userRepo.TouchLastLogin(user.ID); err != nil {
		// Not fatal for the login itself.
		log.Warn().Err(err).Str("userId", user.ID).Msg("Login: failed to update last login timestamp")
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		log.Error().Err(err).Msg("Login: failed to sign access token")
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		log.Error().Err(err).Msg("Login: failed to sign refresh token")
		return nil, err
	}

	var userResp dto.UserResponse
	copier.Copy(&userResp, user)

	return &dto.AuthResponse{
		User:         userResp,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.tokens.AccessTTL(),
	}, nil
}

func (s *authService) Refresh(req dto.RefreshRequest) (*dto.TokenPairResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		log.Error().Err(err).Msg("Refresh: failed to sign access token")
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		log.Error().Err(err).Msg("Refresh: failed to sign refresh token")
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.tokens.AccessTTL(),
	}, nil
}

func (s *authService) Me(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return &resp, nil
}
