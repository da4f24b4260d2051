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

type VersionService interface {
	Create(req dto.CreateVersionRequest, createdBy string) (*dto.VersionResponse, error)
	Get(id string) (*dto.VersionResponse, error)
	List(filter repository.VersionFilter) ([]dto.VersionResponse, int64, error)
	Update(id string, req dto.UpdateVersionRequest) (*dto.VersionResponse, error)
	Delete(id string) error
}

type versionService struct {
	versionRepo repository.VersionRepository
	projectRepo repository.ProjectRepository
}

func NewVersionService(versionRepo repository.VersionRepository, projectRepo repository.ProjectRepository) VersionService {
	return &versionService{versionRepo: versionRepo, projectRepo: projectRepo}
}

func (s *versionService) Create(req dto.CreateVersionRequest, createdBy string) (*dto.VersionResponse, error) {
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

	version := model.Version{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
		CreatedBy:   &createdBy,
	}
	if err := s.versionRepo.Create(&version); err != nil {
		log.Error().Err(err).Str("projectId", req.ProjectID).Msg("CreateVersion: insert failed")
		return nil, err
	}

	var resp dto.VersionResponse
	copier.Copy(&resp, &version)
	return &resp, nil
}

func (s *versionService) Get(id string) (*dto.VersionResponse, error) {
	version, err := s.versionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.VersionResponse
	copier.Copy(&resp, version)
	return &resp, nil
}

func (s *versionService) List(filter repository.VersionFilter) ([]dto.VersionResponse, int64, error) {
	versions, total, err := s.versionRepo.FindAll(filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.VersionResponse, len(versions))
	for i := range versions {
		copier.Copy(&resp[i], &versions[i])
	}
	return resp, total, nil
}

func (s *versionService) Update(id string, req dto.UpdateVersionRequest) (*dto.VersionResponse, error) {
	version, err := s.versionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		version.Name = *req.Name
	}
	if req.Description != nil {
		version.Description = req.Description
	}
	if req.IsActive != nil {
		version.IsActive = *req.IsActive
	}

	if err := s.versionRepo.Update(version); err != nil {
		log.Error().Err(err).Str("versionId", id).Msg("UpdateVersion: save failed")
		return nil, err
	}

	var resp dto.VersionResponse
	copier.Copy(&resp, version)
	return &resp, nil
}

func (s *versionService) Delete(id string) error {
	if _, err := s.versionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.versionRepo.Delete(id)
}
