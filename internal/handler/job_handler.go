package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carelink/internal/model"
	"carelink/internal/service"
)

// JobHandler bundles job HTTP handlers.
type JobHandler struct {
	svc service.JobService
}

// NewJobHandler creates a handler layer.
func NewJobHandler(svc service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// CreateJobRequest carries the fields for posting a job. DatePosted is
// optional and defaults to the current day.
type CreateJobRequest struct {
	MemberUserID           uint   `json:"member_user_id" form:"member_user_id" validate:"required"`
	RequiredCaregivingType string `json:"required_caregiving_type" form:"required_caregiving_type" validate:"required"`
	OtherRequirements      string `json:"other_requirements" form:"other_requirements"`
	DatePosted             string `json:"date_posted" form:"date_posted"`
}

// UpdateJobRequest carries the editable job fields. The posting date is not
// editable.
type UpdateJobRequest struct {
	MemberUserID           uint   `json:"member_user_id" form:"member_user_id" validate:"required"`
	RequiredCaregivingType string `json:"required_caregiving_type" form:"required_caregiving_type" validate:"required"`
	OtherRequirements      string `json:"other_requirements" form:"other_requirements"`
}

// ListJobs godoc
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	jobs, err := h.svc.ListJobs(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get job by id
// @Tags jobs
// @Produce json
// @Param job_id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{job_id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := parseIDParam(c, "job_id")
	if err != nil {
		return err
	}
	job, err := h.svc.GetJob(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body CreateJobRequest true "Job fields"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	datePosted, err := parseOptionalDate(req.DatePosted)
	if err != nil {
		return err
	}
	created, err := h.svc.CreateJob(c.Request().Context(), &model.Job{
		MemberUserID:           req.MemberUserID,
		RequiredCaregivingType: req.RequiredCaregivingType,
		OtherRequirements:      req.OtherRequirements,
		DatePosted:             datePosted,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateJob godoc
// @Summary Update job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job_id path int true "Job ID"
// @Param request body UpdateJobRequest true "Job fields"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{job_id} [put]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	id, err := parseIDParam(c, "job_id")
	if err != nil {
		return err
	}
	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateJob(c.Request().Context(), id, &model.Job{
		MemberUserID:           req.MemberUserID,
		RequiredCaregivingType: req.RequiredCaregivingType,
		OtherRequirements:      req.OtherRequirements,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteJob godoc
// @Summary Delete job
// @Tags jobs
// @Param job_id path int true "Job ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /jobs/{job_id} [delete]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	id, err := parseIDParam(c, "job_id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteJob(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
