package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"soko/internal/models/request_models"
	"soko/internal/services"
	"soko/pkg/middleware"
	"soko/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtExpires  time.Duration
}

func NewAuthController(authService services.AuthServiceInterface, jwtExpires time.Duration) *AuthController {
	return &AuthController{
		authService: authService,
		jwtExpires:  jwtExpires,
	}
}

func (a *AuthController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	user, token, refresh, err := a.authService.Signup(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	a.setTokenCookie(c, token)
	utils.RespondToken(c, http.StatusCreated, token, refresh, gin.H{"user": user})
}

func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	user, token, refresh, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	a.setTokenCookie(c, token)
	utils.RespondToken(c, http.StatusOK, token, refresh, gin.H{"user": user})
}

func (a *AuthController) Refresh(c *gin.Context) {
	var req request_models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	token, refresh, err := a.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, err)
		return
	}

	a.setTokenCookie(c, token)
	utils.RespondToken(c, http.StatusOK, token, refresh, nil)
}

func (a *AuthController) Logout(c *gin.Context) {
	var req request_models.RefreshRequest
	// body is optional here, an expired client may have lost its token
	_ = c.ShouldBindJSON(&req)

	if err := a.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		fail(c, err)
		return
	}

	c.SetCookie("jwt", "loggedout", 10, "/", "", false, true)
	utils.RespondSuccess(c, nil, "Logged out")
}

func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	if err := a.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Token sent to email!")
}

func (a *AuthController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	user, token, refresh, err := a.authService.ResetPassword(c.Request.Context(), c.Param("token"), req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	a.setTokenCookie(c, token)
	utils.RespondToken(c, http.StatusOK, token, refresh, gin.H{"user": user})
}

func (a *AuthController) UpdatePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}

	var req request_models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	token, refresh, err := a.authService.UpdatePassword(c.Request.Context(), user, req)
	if err != nil {
		fail(c, err)
		return
	}

	a.setTokenCookie(c, token)
	utils.RespondToken(c, http.StatusOK, token, refresh, nil)
}

func (a *AuthController) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie("jwt", token, int(a.jwtExpires.Seconds()), "/", "", false, true)
}
