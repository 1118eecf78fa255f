package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dbc/backend/internal/service"
)

type JobHandler struct {
	service service.DomainJobService
}

type jobSummaryResponse struct {
	Job        string   `json:"job"`
	Processed  int      `json:"processed"`
	Succeeded  int      `json:"succeeded"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
	StartedAt  string   `json:"startedAt"`
	FinishedAt string   `json:"finishedAt"`
	DurationMs int64    `json:"durationMs"`
}

func NewJobHandler(service service.DomainJobService) *JobHandler {
	return &JobHandler{service: service}
}

// RegisterRoutes registers the cron endpoints on g. Authentication is the
// caller's middleware.
func (h *JobHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/cron/cleanup-domains", h.Cleanup)
	g.POST("/cron/reverify-domains", h.Reverify)
}

// Cleanup godoc
//
//	@Summary		Remove stale unverified and orphaned domains
//	@Tags			cron
//	@Produce		json
//	@Success		200	{object}	jobSummaryResponse
//	@Failure		401	{object}	errorResponse
//	@Security		CronAuth
//	@Router			/cron/cleanup-domains [post]
func (h *JobHandler) Cleanup(c echo.Context) error {
	return h.run(c, h.service.Cleanup)
}

// Reverify godoc
//
//	@Summary		Ask the hosting provider to verify pending domains
//	@Tags			cron
//	@Produce		json
//	@Success		200	{object}	jobSummaryResponse
//	@Failure		401	{object}	errorResponse
//	@Security		CronAuth
//	@Router			/cron/reverify-domains [post]
func (h *JobHandler) Reverify(c echo.Context) error {
	return h.run(c, h.service.Reverify)
}

func (h *JobHandler) run(c echo.Context, fn func(context.Context) (*service.JobSummary, error)) error {
	summary, err := fn(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	errs := summary.Errors
	if errs == nil {
		errs = []string{}
	}
	return c.JSON(http.StatusOK, jobSummaryResponse{
		Job:        summary.Job,
		Processed:  summary.Processed,
		Succeeded:  summary.Succeeded,
		Failed:     summary.Failed,
		Errors:     errs,
		StartedAt:  summary.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt: summary.FinishedAt.UTC().Format(time.RFC3339),
		DurationMs: summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
	})
}
