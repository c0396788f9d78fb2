package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/middleware"
	"tripplanner/internal/model"
	"tripplanner/internal/service"
)

// AdminHandler handles user management endpoints. The admin role gate runs
// upstream in the middleware chain.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// UpdateRoleRequest represents a role change payload.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdatePasswordRequest represents a password reset payload.
type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

// UserListResponse carries public projections only; the credential never
// leaves the model layer.
type UserListResponse struct {
	Success bool               `json:"success"`
	Users   []model.PublicUser `json:"users"`
}

// ListUsers godoc
// @Summary List all users, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	projections := make([]model.PublicUser, 0, len(users))
	for i := range users {
		projections = append(projections, users[i].Public())
	}

	return c.JSON(http.StatusOK, UserListResponse{
		Success: true,
		Users:   projections,
	})
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateRoleRequest true "New role"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.adminService.UpdateRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "User role updated successfully",
	})
}

// UpdatePassword godoc
// @Summary Reset a user's password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdatePasswordRequest true "New password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id}/password [put]
func (h *AdminHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.adminService.UpdatePassword(c.Request().Context(), c.Param("id"), req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "User password updated successfully",
	})
}

// DeleteUser godoc
// @Summary Delete a user and their trips
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	ident, ok := middleware.CurrentUser(c)
	if !ok {
		return apperrors.ErrNotAuthenticated
	}

	if err := h.adminService.DeleteUser(c.Request().Context(), ident.ID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}
