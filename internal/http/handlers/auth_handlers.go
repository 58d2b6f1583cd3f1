package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thegridly/authsvc/domain"
)

// User-facing messages, verbatim from the app's alerts
const (
	MsgBadCredentials   = "Incorrect username or password."
	MsgProfileNotFound  = "User data not found."
	MsgPasswordMismatch = "Passwords do not match"
	MsgSignupGeneric    = "An unknown error occurred."
	MsgNotLoggedIn      = "Not logged in."
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup form
type SignupRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	University      string `json:"university" binding:"required"`
	Major           string `json:"major"`
}

// Login handles sign-in. The failure message never distinguishes a wrong
// password from an unknown user.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": err.Error()})
		return
	}

	session, err := h.authSvc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			// Token issued but no profile record: inconsistent backend
			// state, surfaced distinctly.
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": MsgProfileNotFound})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "message": MsgBadCredentials})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "firstName": session.FirstName})
}

// Signup handles account creation. Provider rejection text is passed
// through when available; anything else gets the generic message.
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": err.Error()})
		return
	}

	err := h.authSvc.SignUp(c.Request.Context(), &domain.SignupRequest{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		University:      req.University,
		Major:           req.Major,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPasswordMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": MsgPasswordMismatch})
			return
		}
		if pe, ok := domain.AsProviderError(err); ok && pe.Message != "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": pe.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": MsgSignupGeneric})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// Session handles session bootstrap on app start
func (h *AuthHandlers) Session(c *gin.Context) {
	session, err := h.authSvc.RestoreSession(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": MsgProfileNotFound})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "message": MsgNotLoggedIn})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "firstName": session.FirstName})
}

// Logout handles logout
func (h *AuthHandlers) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "Logout failed."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
