package service

import (
	"errors"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ModuleService interface {
	Create(req dto.CreateModuleRequest, createdBy string) (*dto.ModuleResponse, error)
	Get(id string) (*dto.ModuleResponse, error)
	List(filter repository.ModuleFilter) ([]dto.ModuleResponse, int64, error)
	Update(id string, req dto.UpdateModuleRequest) (*dto.ModuleResponse, error)
	Delete(id string) error
}

type moduleService struct {
	moduleRepo  repository.ModuleRepository
	projectRepo repository.ProjectRepository
}

func NewModuleService(moduleRepo repository.ModuleRepository, projectRepo repository.ProjectRepository) ModuleService {
	return &moduleService{moduleRepo: moduleRepo, projectRepo: projectRepo}
}

func (s *moduleService) Create(req dto.CreateModuleRequest, createdBy string) (*dto.ModuleResponse, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	module := model.Module{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
		CreatedBy:   &createdBy,
	}
	if err := s.moduleRepo.Create(&module); err != nil {
		log.Error().Err(err).Str("projectId", req.ProjectID).Msg("CreateModule: insert failed")
		return nil, err
	}

	var resp dto.ModuleResponse
	copier.Copy(&resp, &module)
	return &resp, nil
}

func (s *moduleService) Get(id string) (*dto.ModuleResponse, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.ModuleResponse
	copier.Copy(&resp, module)
	return &resp, nil
}

func (s *moduleService) List(filter repository.ModuleFilter) ([]dto.ModuleResponse, int64, error) {
	modules, total, err := s.moduleRepo.FindAll(filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.ModuleResponse, len(modules))
	for i := range modules {
		copier.Copy(&resp[i], &modules[i].Module)
		resp[i].TestCaseCount = modules[i].TestCaseCount
	}
	return resp, total, nil
}

func (s *moduleService) Update(id string, req dto.UpdateModuleRequest) (*dto.ModuleResponse, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		module.Name = *req.Name
	}
	if req.Description != nil {
		module.Description = req.Description
	}
	if req.IsActive != nil {
		module.IsActive = *req.IsActive
	}

	if err := s.moduleRepo.Update(module); err != nil {
		log.Error().Err(err).Str("moduleId", id).Msg("UpdateModule: save failed")
		return nil, err
	}

	var resp dto.ModuleResponse
	copier.Copy(&resp, module)
	return &resp, nil
}

func (s *moduleService) Delete(id string) error {
	if _, err := s.moduleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.moduleRepo.Delete(id)
}
