package controller

import (
	"english_learning_backend/internal/config"
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
	JWT         config.JWTConfig
}

func NewAuthController(authService *service.AuthService, userService *service.UserService, jwtCfg config.JWTConfig) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
		JWT:         jwtCfg,
	}
}

func (c *AuthController) setAuthCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.JWT.CookieName, token, maxAge, "/", "", c.JWT.Secure, true)
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Account details"
// @Success 201 {object} util.Response{data=service.Profile}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, c.UserService.ProfileOf(user))
}

// Login godoc
// @Summary Log in
// @Description Issues a JWT as an HttpOnly cookie and in the response body
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, claims, user, err := c.AuthService.Login(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	c.setAuthCookie(ctx, token, int(claims.TTL().Seconds()))
	util.Success(ctx, gin.H{
		"token":     token,
		"expiresAt": claims.ExpiresAt.Time,
		"user":      c.UserService.ProfileOf(user),
	})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current token and clears the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	c.setAuthCookie(ctx, "", -1)
	util.Success(ctx, nil)
}
