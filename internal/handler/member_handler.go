package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carelink/internal/model"
	"carelink/internal/service"
)

// MemberHandler bundles member HTTP handlers.
type MemberHandler struct {
	svc service.MemberService
}

// NewMemberHandler creates a handler layer.
func NewMemberHandler(svc service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// CreateMemberRequest carries the fields for creating a member profile.
type CreateMemberRequest struct {
	MemberUserID         uint   `json:"member_user_id" form:"member_user_id" validate:"required"`
	HouseRules           string `json:"house_rules" form:"house_rules" validate:"required"`
	DependentDescription string `json:"dependent_description" form:"dependent_description" validate:"required"`
}

// UpdateMemberRequest carries the editable member fields; the owning user
// cannot change.
type UpdateMemberRequest struct {
	HouseRules           string `json:"house_rules" form:"house_rules" validate:"required"`
	DependentDescription string `json:"dependent_description" form:"dependent_description" validate:"required"`
}

// ListMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} model.Member
// @Router /members [get]
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.svc.ListMembers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, members)
}

// GetMember godoc
// @Summary Get member by user id
// @Tags members
// @Produce json
// @Param member_user_id path int true "Member user ID"
// @Success 200 {object} model.Member
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{member_user_id} [get]
func (h *MemberHandler) GetMember(c echo.Context) error {
	id, err := parseIDParam(c, "member_user_id")
	if err != nil {
		return err
	}
	member, err := h.svc.GetMember(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// CreateMember godoc
// @Summary Create member profile
// @Tags members
// @Accept json
// @Produce json
// @Param request body CreateMemberRequest true "Member fields"
// @Success 201 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /members [post]
func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateMember(c.Request().Context(), &model.Member{
		MemberUserID:         req.MemberUserID,
		HouseRules:           req.HouseRules,
		DependentDescription: req.DependentDescription,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateMember godoc
// @Summary Update member profile
// @Tags members
// @Accept json
// @Produce json
// @Param member_user_id path int true "Member user ID"
// @Param request body UpdateMemberRequest true "Member fields"
// @Success 200 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{member_user_id} [put]
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	id, err := parseIDParam(c, "member_user_id")
	if err != nil {
		return err
	}
	var req UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateMember(c.Request().Context(), id, &model.Member{
		HouseRules:           req.HouseRules,
		DependentDescription: req.DependentDescription,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteMember godoc
// @Summary Delete member profile
// @Tags members
// @Param member_user_id path int true "Member user ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /members/{member_user_id} [delete]
func (h *MemberHandler) DeleteMember(c echo.Context) error {
	id, err := parseIDParam(c, "member_user_id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteMember(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
