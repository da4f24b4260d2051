package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoangnln/testtrack/internal/dto"
	"github.com/hoangnln/testtrack/internal/response"
	"github.com/hoangnln/testtrack/internal/service"
	"github.com/rs/zerolog/log"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// Dashboard godoc
// @Summary Dashboard overview
// @Description Totals, pass rate, open bug counts by severity and recent run activity.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.DashboardReport}
// @Router /reports/dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	report, err := c.reportService.Dashboard()
	if err != nil {
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Success(ctx, report)
}

// Coverage godoc
// @Summary Test coverage per module
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.CoverageReport}
// @Router /reports/test-coverage [get]
func (c *ReportController) Coverage(ctx *gin.Context) {
	report, err := c.reportService.Coverage()
	if err != nil {
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Success(ctx, report)
}

// BugAnalytics godoc
// @Summary Bug counts by status, severity and type
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.BugAnalyticsReport}
// @Router /reports/bug-analytics [get]
func (c *ReportController) BugAnalytics(ctx *gin.Context) {
	report, err := c.reportService.BugAnalytics()
	if err != nil {
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Success(ctx, report)
}

// UserActivity godoc
// @Summary Per-user execution activity and assignment workload
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param project_id query string false "Filter by project"
// @Param user_id query string false "Filter by user"
// @Param start_date query string false "Runs executed at or after (RFC 3339 or YYYY-MM-DD)"
// @Param end_date query string false "Runs executed at or before (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} response.Envelope{data=dto.UserActivityReport}
// @Failure 422 {object} response.Envelope
// @Router /reports/user-activity [get]
func (c *ReportController) UserActivity(ctx *gin.Context) {
	filter := dto.UserActivityFilter{
		ProjectID: ctx.Query("project_id"),
		UserID:    ctx.Query("user_id"),
	}

	var err error
	if filter.StartDate, err = parseDateQuery(ctx.Query("start_date")); err != nil {
		response.ValidationError(ctx, "Invalid start_date", err.Error())
		return
	}
	if filter.EndDate, err = parseDateQuery(ctx.Query("end_date")); err != nil {
		response.ValidationError(ctx, "Invalid end_date", err.Error())
		return
	}

	report, err := c.reportService.UserActivity(filter)
	if err != nil {
		log.Error().Err(err).Msg("UserActivity report failed")
		response.ServerError(ctx, "Internal server error")
		return
	}
	response.Success(ctx, report)
}

func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
