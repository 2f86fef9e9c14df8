package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carelink/internal/model"
	"carelink/internal/service"
)

// AppointmentHandler bundles appointment HTTP handlers.
type AppointmentHandler struct {
	svc service.AppointmentService
}

// NewAppointmentHandler creates a handler layer.
func NewAppointmentHandler(svc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// AppointmentRequest carries the appointment fields submitted on create and
// update. Status is free-form.
type AppointmentRequest struct {
	CaregiverUserID uint   `json:"caregiver_user_id" form:"caregiver_user_id" validate:"required"`
	MemberUserID    uint   `json:"member_user_id" form:"member_user_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" form:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" form:"appointment_time" validate:"required"`
	WorkHours       int    `json:"work_hours" form:"work_hours" validate:"required,min=1"`
	Status          string `json:"status" form:"status" validate:"required"`
}

func (r *AppointmentRequest) toModel() (*model.Appointment, error) {
	date, err := parseDate(r.AppointmentDate)
	if err != nil {
		return nil, err
	}
	clock, err := parseClockTime(r.AppointmentTime)
	if err != nil {
		return nil, err
	}
	return &model.Appointment{
		CaregiverUserID: r.CaregiverUserID,
		MemberUserID:    r.MemberUserID,
		AppointmentDate: date,
		AppointmentTime: clock,
		WorkHours:       r.WorkHours,
		Status:          r.Status,
	}, nil
}

// ListAppointments godoc
// @Summary List appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} model.Appointment
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	appointments, err := h.svc.ListAppointments(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, appointments)
}

// GetAppointment godoc
// @Summary Get appointment by id
// @Tags appointments
// @Produce json
// @Param appointment_id path int true "Appointment ID"
// @Success 200 {object} model.Appointment
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{appointment_id} [get]
func (h *AppointmentHandler) GetAppointment(c echo.Context) error {
	id, err := parseIDParam(c, "appointment_id")
	if err != nil {
		return err
	}
	appointment, err := h.svc.GetAppointment(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, appointment)
}

// CreateAppointment godoc
// @Summary Create appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body AppointmentRequest true "Appointment fields"
// @Success 201 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appointment, err := req.toModel()
	if err != nil {
		return err
	}
	created, err := h.svc.CreateAppointment(c.Request().Context(), appointment)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAppointment godoc
// @Summary Update appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment_id path int true "Appointment ID"
// @Param request body AppointmentRequest true "Appointment fields"
// @Success 200 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{appointment_id} [put]
func (h *AppointmentHandler) UpdateAppointment(c echo.Context) error {
	id, err := parseIDParam(c, "appointment_id")
	if err != nil {
		return err
	}
	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appointment, err := req.toModel()
	if err != nil {
		return err
	}
	updated, err := h.svc.UpdateAppointment(c.Request().Context(), id, appointment)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAppointment godoc
// @Summary Delete appointment
// @Tags appointments
// @Param appointment_id path int true "Appointment ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{appointment_id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	id, err := parseIDParam(c, "appointment_id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteAppointment(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
