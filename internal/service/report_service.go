package service

import (
	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/repository"
	"github.com/rs/zerolog/log"
)

type ReportService interface {
	Dashboard() (*dto.DashboardReport, error)
	Coverage() (*dto.CoverageReport, error)
	BugAnalytics() (*dto.BugAnalyticsReport, error)
	UserActivity(filter dto.UserActivityFilter) (*dto.UserActivityReport, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Dashboard() (*dto.DashboardReport, error) {
	report, err := s.reportRepo.Dashboard()
	if err != nil {
		log.Error().Err(err).Msg("Dashboard report failed")
		return nil, err
	}
	return report, nil
}

func (s *reportService) Coverage() (*dto.CoverageReport, error) {
	report, err := s.reportRepo.Coverage()
	if err != nil {
		log.Error().Err(err).Msg("Coverage report failed")
		return nil, err
	}
	return report, nil
}

func (s *reportService) BugAnalytics() (*dto.BugAnalyticsReport, error) {
	report, err := s.reportRepo.BugAnalytics()
	if err != nil {
		log.Error().Err(err).Msg("Bug analytics report failed")
		return nil, err
	}
	return report, nil
}

func (s *reportService) UserActivity(filter dto.UserActivityFilter) (*dto.UserActivityReport, error) {
	report, err := s.reportRepo.UserActivity(filter)
	if err != nil {
		log.Error().Err(err).Msg("User activity report failed")
		return nil, err
	}
	return report, nil
}
