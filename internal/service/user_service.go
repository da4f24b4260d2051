package service

import (
	"errors"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Create(req dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(id string) (*dto.UserResponse, error)
	List(filter repository.UserFilter) ([]dto.UserResponse, int64, error)
	Update(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("CreateUser: failed to hash password")
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleTester
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("CreateUser: insert failed")
		return nil, err
	}

	var resp dto.UserResponse
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *userService) Get(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
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

func (s *userService) List(filter repository.UserFilter) ([]dto.UserResponse, int64, error) {
	users, total, err := s.userRepo.FindAll(filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		copier.Copy(&resp[i], &users[i])
	}
	return resp, total, nil
}

func (s *userService) Update(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Str("userId", id).Msg("UpdateUser: save failed")
		return nil, err
	}

	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return &resp, nil
}

func (s *userService) Delete(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.userRepo.Delete(id)
}
