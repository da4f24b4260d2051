package service

import (
	"errors"
	"time"

	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/model"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type BugService interface {
	Create(req dto.CreateBugRequest, createdBy string) (*dto.BugResponse, error)
	Get(id string) (*dto.BugResponse, error)
	List(filter repository.BugFilter) ([]dto.BugResponse, int64, error)
	Update(id string, req dto.UpdateBugRequest) (*dto.BugResponse, error)
	Delete(id string) error
	AddComment(bugID, userID string, req dto.AddBugCommentRequest) (*dto.BugCommentResponse, error)
}

type bugService struct {
	bugRepo repository.BugRepository
}

func NewBugService(bugRepo repository.BugRepository) BugService {
	return &bugService{bugRepo: bugRepo}
}

func (s *bugService) Create(req dto.CreateBugRequest, createdBy string) (*dto.BugResponse, error) {
	bug := model.Bug{
		TestRunID:        req.TestRunID,
		Title:            req.Title,
		Description:      req.Description,
		Severity:         defaultString(req.Severity, model.PriorityMedium),
		Priority:         defaultString(req.Priority, model.PriorityMedium),
		Status:           defaultString(req.Status, model.BugStatusOpen),
		Type:             defaultString(req.Type, model.BugTypeFunctional),
		StepsToReproduce: req.StepsToReproduce,
		Environment:      req.Environment,
		BuildVersion:     req.BuildVersion,
		CreatedBy:        createdBy,
		AssignedTo:       req.AssignedTo,
	}
	if err := s.bugRepo.Create(&bug); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateBug: insert failed")
		return nil, err
	}
	return s.Get(bug.ID)
}

func (s *bugService) Get(id string) (*dto.BugResponse, error) {
	bug, err := s.bugRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toBugResponse(bug), nil
}

func (s *bugService) List(filter repository.BugFilter) ([]dto.BugResponse, int64, error) {
	bugs, total, err := s.bugRepo.FindAll(filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.BugResponse, len(bugs))
	for i := range bugs {
		resp[i] = *toBugResponse(&bugs[i])
	}
	return resp, total, nil
}

func (s *bugService) Update(id string, req dto.UpdateBugRequest) (*dto.BugResponse, error) {
	bug, err := s.bugRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		bug.Title = *req.Title
	}
	if req.Description != nil {
		bug.Description = *req.Description
	}
	if req.Severity != nil {
		bug.Severity = *req.Severity
	}
	if req.Priority != nil {
		bug.Priority = *req.Priority
	}
	if req.Type != nil {
		bug.Type = *req.Type
	}
	if req.StepsToReproduce != nil {
		bug.StepsToReproduce = req.StepsToReproduce
	}
	if req.AssignedTo != nil {
		bug.AssignedTo = req.AssignedTo
	}
	if req.Status != nil {
		bug.Status = *req.Status
		now := time.Now()
		// Lifecycle timestamps are set on the first transition and kept.
		if *req.Status == model.BugStatusResolved && bug.ResolvedAt == nil {
			bug.ResolvedAt = &now
		}
		if *req.Status == model.BugStatusClosed && bug.ClosedAt == nil {
			bug.ClosedAt = &now
		}
	}

	if err := s.bugRepo.Update(bug); err != nil {
		log.Error().Err(err).Str("bugId", id).Msg("UpdateBug: save failed")
		return nil, err
	}
	return s.Get(id)
}

func (s *bugService) Delete(id string) error {
	if _, err := s.bugRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.bugRepo.Delete(id)
}

func (s *bugService) AddComment(bugID, userID string, req dto.AddBugCommentRequest) (*dto.BugCommentResponse, error) {
	if _, err := s.bugRepo.FindByID(bugID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := model.BugComment{
		BugID:   bugID,
		UserID:  userID,
		Comment: req.Comment,
	}
	if err := s.bugRepo.AddComment(&comment); err != nil {
		log.Error().Err(err).Str("bugId", bugID).Msg("AddComment: insert failed")
		return nil, err
	}

	resp := toBugCommentResponse(&comment)
	return &resp, nil
}

func toBugResponse(bug *model.Bug) *dto.BugResponse {
	var resp dto.BugResponse
	copier.Copy(&resp, bug)
	resp.Comments = make([]dto.BugCommentResponse, len(bug.Comments))
	for i := range bug.Comments {
		resp.Comments[i] = toBugCommentResponse(&bug.Comments[i])
	}
	return &resp
}

func toBugCommentResponse(comment *model.BugComment) dto.BugCommentResponse {
	return dto.BugCommentResponse{
		ID:        comment.ID,
		BugID:     comment.BugID,
		UserID:    comment.UserID,
		Username:  comment.User.Username,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
