package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carelink/internal/model"
	"carelink/internal/service"
)

// AddressHandler bundles address HTTP handlers.
type AddressHandler struct {
	svc service.AddressService
}

// NewAddressHandler creates a handler layer.
func NewAddressHandler(svc service.AddressService) *AddressHandler {
	return &AddressHandler{svc: svc}
}

// CreateAddressRequest carries the fields for creating a member address.
type CreateAddressRequest struct {
	MemberUserID uint   `json:"member_user_id" form:"member_user_id" validate:"required"`
	HouseNumber  string `json:"house_number" form:"house_number" validate:"required"`
	Street       string `json:"street" form:"street" validate:"required"`
	Town         string `json:"town" form:"town" validate:"required"`
}

// UpdateAddressRequest carries the editable address fields; the owning member
// cannot change.
type UpdateAddressRequest struct {
	HouseNumber string `json:"house_number" form:"house_number" validate:"required"`
	Street      string `json:"street" form:"street" validate:"required"`
	Town        string `json:"town" form:"town" validate:"required"`
}

// ListAddresses godoc
// @Summary List addresses
// @Tags addresses
// @Produce json
// @Success 200 {array} model.Address
// @Router /addresses [get]
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.svc.ListAddresses(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, addresses)
}

// GetAddress godoc
// @Summary Get address by member user id
// @Tags addresses
// @Produce json
// @Param member_user_id path int true "Member user ID"
// @Success 200 {object} model.Address
// @Failure 404 {object} errors.ErrorResponse
// @Router /addresses/{member_user_id} [get]
func (h *AddressHandler) GetAddress(c echo.Context) error {
	id, err := parseIDParam(c, "member_user_id")
	if err != nil {
		return err
	}
	address, err := h.svc.GetAddress(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, address)
}

// CreateAddress godoc
// @Summary Create member address
// @Tags addresses
// @Accept json
// @Produce json
// @Param request body CreateAddressRequest true "Address fields"
// @Success 201 {object} model.Address
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /addresses [post]
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateAddress(c.Request().Context(), &model.Address{
		MemberUserID: req.MemberUserID,
		HouseNumber:  req.HouseNumber,
		Street:       req.Street,
		Town:         req.Town,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAddress godoc
// @Summary Update member address
// @Tags addresses
// @Accept json
// @Produce json
// @Param member_user_id path int true "Member user ID"
// @Param request body UpdateAddressRequest true "Address fields"
// @Success 200 {object} model.Address
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /addresses/{member_user_id} [put]
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	id, err := parseIDParam(c, "member_user_id")
	if err != nil {
		return err
	}
	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateAddress(c.Request().Context(), id, &model.Address{
		HouseNumber: req.HouseNumber,
		Street:      req.Street,
		Town:        req.Town,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAddress godoc
// @Summary Delete member address
// @Tags addresses
// @Param member_user_id path int true "Member user ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /addresses/{member_user_id} [delete]
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, err := parseIDParam(c, "member_user_id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteAddress(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
