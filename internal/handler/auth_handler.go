package handler

import (
	"errors"
	"net/http"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/service"
	"classroom-fund-registry/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginForm renders the login page
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if _, exists := c.Get(utils.ContextUserKey); exists {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	utils.RenderPage(c, "login.html", nil)
}

// Login authenticates the operator and establishes a session. Bad
// credentials produce one generic notice regardless of whether the
// email exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RedirectWithError(c, "/login", "Email and password are required")
		return
	}

	user, err := h.authService.Authenticate(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			utils.RedirectWithError(c, "/login", "Invalid email or password")
			return
		}
		utils.RedirectWithError(c, "/login", "Failed to access the database")
		return
	}

	token, err := utils.IssueSessionToken(user.ID, user.Email, user.FullName)
	if err != nil {
		utils.RedirectWithError(c, "/login", "Failed to establish session")
		return
	}

	utils.SetSessionCookie(c, token)
	utils.RedirectWithSuccess(c, "/", "Logged in as "+user.FullName)
}

// Logout clears the session unconditionally
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	utils.RedirectWithSuccess(c, "/", "Logged out")
}
