package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carelink/internal/model"
	"carelink/internal/service"
)

// JobApplicationHandler bundles job-application HTTP handlers.
type JobApplicationHandler struct {
	svc service.JobApplicationService
}

// NewJobApplicationHandler creates a handler layer.
func NewJobApplicationHandler(svc service.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{svc: svc}
}

// CreateJobApplicationRequest carries the fields for applying to a job.
// DateApplied is optional and defaults to the current day.
type CreateJobApplicationRequest struct {
	CaregiverUserID uint   `json:"caregiver_user_id" form:"caregiver_user_id" validate:"required"`
	JobID           uint   `json:"job_id" form:"job_id" validate:"required"`
	DateApplied     string `json:"date_applied" form:"date_applied"`
}

// MoveJobApplicationRequest carries the new (caregiver, job) pair when an
// application is reassigned. The application date is kept from the original.
type MoveJobApplicationRequest struct {
	CaregiverUserID uint `json:"caregiver_user_id" form:"caregiver_user_id" validate:"required"`
	JobID           uint `json:"job_id" form:"job_id" validate:"required"`
}

// ListJobApplications godoc
// @Summary List job applications
// @Tags job-applications
// @Produce json
// @Success 200 {array} model.JobApplication
// @Router /job-applications [get]
func (h *JobApplicationHandler) ListJobApplications(c echo.Context) error {
	applications, err := h.svc.ListJobApplications(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, applications)
}

// GetJobApplication godoc
// @Summary Get job application by composite key
// @Tags job-applications
// @Produce json
// @Param caregiver_user_id path int true "Caregiver user ID"
// @Param job_id path int true "Job ID"
// @Success 200 {object} model.JobApplication
// @Failure 404 {object} errors.ErrorResponse
// @Router /job-applications/{caregiver_user_id}/{job_id} [get]
func (h *JobApplicationHandler) GetJobApplication(c echo.Context) error {
	caregiverUserID, jobID, err := applicationKey(c)
	if err != nil {
		return err
	}
	application, err := h.svc.GetJobApplication(c.Request().Context(), caregiverUserID, jobID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, application)
}

// CreateJobApplication godoc
// @Summary Apply to a job
// @Tags job-applications
// @Accept json
// @Produce json
// @Param request body CreateJobApplicationRequest true "Application fields"
// @Success 201 {object} model.JobApplication
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /job-applications [post]
func (h *JobApplicationHandler) CreateJobApplication(c echo.Context) error {
	var req CreateJobApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	dateApplied, err := parseOptionalDate(req.DateApplied)
	if err != nil {
		return err
	}
	created, err := h.svc.CreateJobApplication(c.Request().Context(), &model.JobApplication{
		CaregiverUserID: req.CaregiverUserID,
		JobID:           req.JobID,
		DateApplied:     dateApplied,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// MoveJobApplication godoc
// @Summary Reassign a job application to a new caregiver/job pair
// @Tags job-applications
// @Accept json
// @Produce json
// @Param caregiver_user_id path int true "Caregiver user ID"
// @Param job_id path int true "Job ID"
// @Param request body MoveJobApplicationRequest true "New pair"
// @Success 200 {object} model.JobApplication
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /job-applications/{caregiver_user_id}/{job_id} [put]
func (h *JobApplicationHandler) MoveJobApplication(c echo.Context) error {
	caregiverUserID, jobID, err := applicationKey(c)
	if err != nil {
		return err
	}
	var req MoveJobApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	moved, err := h.svc.MoveJobApplication(c.Request().Context(), caregiverUserID, jobID, req.CaregiverUserID, req.JobID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, moved)
}

// DeleteJobApplication godoc
// @Summary Delete job application
// @Tags job-applications
// @Param caregiver_user_id path int true "Caregiver user ID"
// @Param job_id path int true "Job ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /job-applications/{caregiver_user_id}/{job_id} [delete]
func (h *JobApplicationHandler) DeleteJobApplication(c echo.Context) error {
	caregiverUserID, jobID, err := applicationKey(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteJobApplication(c.Request().Context(), caregiverUserID, jobID); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func applicationKey(c echo.Context) (uint, uint, error) {
	caregiverUserID, err := parseIDParam(c, "caregiver_user_id")
	if err != nil {
		return 0, 0, err
	}
	jobID, err := parseIDParam(c, "job_id")
	if err != nil {
		return 0, 0, err
	}
	return caregiverUserID, jobID, nil
}
