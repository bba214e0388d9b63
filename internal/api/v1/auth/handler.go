package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	auth *services.AuthService
}

func NewHandler(auth *services.AuthService) *Handler {
	return &Handler{auth: auth}
}

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// Signup godoc
// @Summary Register a new account
// @Description Create a user with email, password and full name
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   SignupInput  true  "Signup Input"
// @Success 201 {object} utils.Response{data=SessionResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var input SignupInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), input.Email, input.Password, input.FullName)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to register user"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Could not generate token"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("User registered successfully", SessionResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}))
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password; advances the login streak
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   LoginInput  true  "Login Input"
// @Success 200 {object} utils.Response{data=SessionResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to log in"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", SessionResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}))
}

// Me godoc
// @Summary Current user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=models.User}
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Not authenticated"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", user))
}

// Confirm godoc
// @Summary Confirm email address
// @Produce  json
// @Param   email  query  string  true  "Account email"
// @Param   token  query  string  true  "Confirmation token"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /auth/confirm [get]
func (h *Handler) Confirm(c *gin.Context) {
	emailAddr := c.Query("email")
	token := c.Query("token")
	if emailAddr == "" || token == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "email and token are required"))
		return
	}

	if err := h.auth.ConfirmEmail(c.Request.Context(), emailAddr, token); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid confirmation link"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Email confirmed", nil))
}

// Logout godoc
// @Summary Log out
// @Description Invalidate the current token
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		return
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		// Already invalid, denylist for the maximum token life anyway.
		if err := services.AddToDenylist(tokenString, time.Hour*24); err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to denylist token"))
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
		return
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid token expiration"))
		return
	}

	remaining := time.Until(time.Unix(int64(exp), 0))
	if err := services.AddToDenylist(tokenString, remaining); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to denylist token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}
