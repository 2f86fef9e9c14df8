package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"carelink/internal/model"
	"carelink/internal/service"
)

// CaregiverHandler bundles caregiver HTTP handlers.
type CaregiverHandler struct {
	svc service.CaregiverService
}

// NewCaregiverHandler creates a handler layer.
func NewCaregiverHandler(svc service.CaregiverService) *CaregiverHandler {
	return &CaregiverHandler{svc: svc}
}

// CreateCaregiverRequest carries the fields for creating a caregiver profile.
type CreateCaregiverRequest struct {
	CaregiverUserID uint                `json:"caregiver_user_id" form:"caregiver_user_id" validate:"required"`
	Photo           string              `json:"photo" form:"photo"`
	Gender          string              `json:"gender" form:"gender"`
	CaregivingType  string              `json:"caregiving_type" form:"caregiving_type" validate:"required"`
	HourlyRate      decimal.NullDecimal `json:"hourly_rate" form:"hourly_rate"`
}

// UpdateCaregiverRequest carries the editable caregiver fields; the owning
// user cannot change.
type UpdateCaregiverRequest struct {
	Photo          string              `json:"photo" form:"photo"`
	Gender         string              `json:"gender" form:"gender"`
	CaregivingType string              `json:"caregiving_type" form:"caregiving_type" validate:"required"`
	HourlyRate     decimal.NullDecimal `json:"hourly_rate" form:"hourly_rate"`
}

// ListCaregivers godoc
// @Summary List caregivers
// @Tags caregivers
// @Produce json
// @Success 200 {array} model.Caregiver
// @Router /caregivers [get]
func (h *CaregiverHandler) ListCaregivers(c echo.Context) error {
	caregivers, err := h.svc.ListCaregivers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, caregivers)
}

// GetCaregiver godoc
// @Summary Get caregiver by user id
// @Tags caregivers
// @Produce json
// @Param caregiver_user_id path int true "Caregiver user ID"
// @Success 200 {object} model.Caregiver
// @Failure 404 {object} errors.ErrorResponse
// @Router /caregivers/{caregiver_user_id} [get]
func (h *CaregiverHandler) GetCaregiver(c echo.Context) error {
	id, err := parseIDParam(c, "caregiver_user_id")
	if err != nil {
		return err
	}
	caregiver, err := h.svc.GetCaregiver(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, caregiver)
}

// CreateCaregiver godoc
// @Summary Create caregiver profile
// @Tags caregivers
// @Accept json
// @Produce json
// @Param request body CreateCaregiverRequest true "Caregiver fields"
// @Success 201 {object} model.Caregiver
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /caregivers [post]
func (h *CaregiverHandler) CreateCaregiver(c echo.Context) error {
	var req CreateCaregiverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateCaregiver(c.Request().Context(), &model.Caregiver{
		CaregiverUserID: req.CaregiverUserID,
		Photo:           req.Photo,
		Gender:          req.Gender,
		CaregivingType:  req.CaregivingType,
		HourlyRate:      req.HourlyRate,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCaregiver godoc
// @Summary Update caregiver profile
// @Tags caregivers
// @Accept json
// @Produce json
// @Param caregiver_user_id path int true "Caregiver user ID"
// @Param request body UpdateCaregiverRequest true "Caregiver fields"
// @Success 200 {object} model.Caregiver
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /caregivers/{caregiver_user_id} [put]
func (h *CaregiverHandler) UpdateCaregiver(c echo.Context) error {
	id, err := parseIDParam(c, "caregiver_user_id")
	if err != nil {
		return err
	}
	var req UpdateCaregiverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateCaregiver(c.Request().Context(), id, &model.Caregiver{
		Photo:          req.Photo,
		Gender:         req.Gender,
		CaregivingType: req.CaregivingType,
		HourlyRate:     req.HourlyRate,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCaregiver godoc
// @Summary Delete caregiver profile
// @Tags caregivers
// @Param caregiver_user_id path int true "Caregiver user ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /caregivers/{caregiver_user_id} [delete]
func (h *CaregiverHandler) DeleteCaregiver(c echo.Context) error {
	id, err := parseIDParam(c, "caregiver_user_id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteCaregiver(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
