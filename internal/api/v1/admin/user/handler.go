package user

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	users *services.UserService
}

func NewHandler(users *services.UserService) *Handler {
	return &Handler{users: users}
}

type UserListItem struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	FullName         string     `json:"full_name"`
	SubscriptionPlan string     `json:"subscription_plan"`
	Points           int        `json:"points"`
	StreakDays       int        `json:"streak_days"`
	IsAdmin          bool       `json:"is_admin"`
	EmailConfirmed   bool       `json:"email_confirmed"`
	LastLogin        *time.Time `json:"last_login"`
	CreatedAt        time.Time  `json:"created_at"`
}

type UserListResponse struct {
	Users []UserListItem `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// List godoc
// @Summary List all users
// @Description Get a paginated list of users. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.Response{data=UserListResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /admin/users [get]
func (h *Handler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	users, total, err := h.users.List(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}

	items := make([]UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserListItem{
			ID:               u.ID,
			Email:            u.Email,
			FullName:         u.FullName,
			SubscriptionPlan: u.SubscriptionPlan,
			Points:           u.Points,
			StreakDays:       u.StreakDays,
			IsAdmin:          u.IsAdmin,
			EmailConfirmed:   u.EmailConfirmed,
			LastLogin:        u.LastLogin,
			CreatedAt:        u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Users retrieved successfully", UserListResponse{
		Users: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

type UpdateUserRequest struct {
	FullName         *string `json:"full_name,omitempty"`
	Password         *string `json:"password,omitempty" binding:"omitempty,min=6"`
	SubscriptionPlan *string `json:"subscription_plan,omitempty"`
	Points           *int    `json:"points,omitempty" binding:"omitempty,gte=0"`
	IsAdmin          *bool   `json:"is_admin,omitempty"`
	EmailConfirmed   *bool   `json:"email_confirmed,omitempty"`
}

// Update godoc
// @Summary Update a user
// @Description Apply a partial update to a user record. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=UserListItem}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if req.SubscriptionPlan != nil {
		updates["subscription_plan"] = *req.SubscriptionPlan
	}
	if req.Points != nil {
		updates["points"] = *req.Points
	}
	if req.IsAdmin != nil {
		updates["is_admin"] = *req.IsAdmin
	}
	if req.EmailConfirmed != nil {
		updates["email_confirmed"] = *req.EmailConfirmed
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	updated, err := h.users.Update(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User updated successfully", UserListItem{
		ID:               updated.ID,
		Email:            updated.Email,
		FullName:         updated.FullName,
		SubscriptionPlan: updated.SubscriptionPlan,
		Points:           updated.Points,
		StreakDays:       updated.StreakDays,
		IsAdmin:          updated.IsAdmin,
		EmailConfirmed:   updated.EmailConfirmed,
		LastLogin:        updated.LastLogin,
		CreatedAt:        updated.CreatedAt,
	}))
}

// Delete godoc
// @Summary Delete a user
// @Description Removes the user and every record they own. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete user"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("User deleted successfully", nil))
}
