package service

import (
	"errors"
	"strings"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(req dto.CreateProjectRequest, createdBy string) (*dto.ProjectResponse, error)
	Get(id string) (*dto.ProjectResponse, error)
	List(filter repository.ProjectFilter) ([]dto.ProjectResponse, int64, error)
	Update(id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	// Delete removes the project and everything reachable from it, or nothing at all.
	Delete(id string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) Create(req dto.CreateProjectRequest, createdBy string) (*dto.ProjectResponse, error) {
	code := strings.ToUpper(req.Code)
	if _, err := s.projectRepo.FindByCode(code); err == nil {
		return nil, ErrProjectCodeTaken
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	project := model.Project{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
		CreatedBy:   &createdBy,
	}
	if err := s.projectRepo.Create(&project); err != nil {
		log.Error().Err(err).Str("code", code).Msg("CreateProject: insert failed")
		return nil, err
	}

	return s.Get(project.ID)
}

func (s *projectService) Get(id string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.ProjectResponse
	copier.Copy(&resp, &project.Project)
	resp.TestCaseCount = project.TestCaseCount
	return &resp, nil
}

func (s *projectService) List(filter repository.ProjectFilter) ([]dto.ProjectResponse, int64, error) {
	projects, total, err := s.projectRepo.FindAll(filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		copier.Copy(&resp[i], &projects[i].Project)
		resp[i].TestCaseCount = projects[i].TestCaseCount
	}
	return resp, total, nil
}

func (s *projectService) Update(id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	existing, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	project := existing.Project
	if req.Code != nil {
		code := strings.ToUpper(*req.Code)
		if code != project.Code {
			if _, err := s.projectRepo.FindByCode(code); err == nil {
				return nil, ErrProjectCodeTaken
			}
			project.Code = code
		}
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := s.projectRepo.Update(&project); err != nil {
		log.Error().Err(err).Str("projectId", id).Msg("UpdateProject: save failed")
		return nil, err
	}
	return s.Get(id)
}

func (s *projectService) Delete(id string) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.projectRepo.DeleteCascade(id); err != nil {
		log.Error().Err(err).Str("projectId", id).Msg("DeleteProject: cascade failed, rolled back")
		return err
	}
	return nil
}
