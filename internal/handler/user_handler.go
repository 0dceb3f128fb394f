package handler

import (
	"net/http"

	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/internal/service"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List retrieves users, optionally filtered by role (?role=Student)
func (h *UserHandler) List(c *gin.Context) {
	var role *models.Role
	if raw := c.Query("role"); raw != "" {
		parsed := models.Role(raw)
		switch parsed {
		case models.RoleAdmin, models.RoleTeacher, models.RoleStudent:
			role = &parsed
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid role")
			return
		}
	}

	users, err := h.userService.ListUsers(role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"users": users,
		"count": len(users),
	})
}

// Teachers retrieves the active teachers for course assignment
func (h *UserHandler) Teachers(c *gin.Context) {
	teachers, err := h.userService.ListTeachers()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

// Deactivate soft-deactivates a user account
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Deactivate(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "User deactivated successfully")
}

// Reactivate restores a deactivated user account
func (h *UserHandler) Reactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Reactivate(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "User reactivated successfully")
}

// Dashboard returns the admin summary counts
func (h *UserHandler) Dashboard(c *gin.Context) {
	summary, err := h.userService.Dashboard()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, summary)
}
