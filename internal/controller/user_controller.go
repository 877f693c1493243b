package controller

import (
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService  *service.UserService
	StatsService *service.StatsService
}

func NewUserController(userService *service.UserService, statsService *service.StatsService) *UserController {
	return &UserController{UserService: userService, StatsService: statsService}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} util.Response{data=service.Profile}
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	profile, err := c.UserService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary Update name and bio
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body service.UpdateProfileRequest true "Profile"
// @Success 200 {object} util.Response{data=service.Profile}
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	profile, err := c.UserService.UpdateProfile(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// ChangePassword godoc
// @Summary Change password
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body service.ChangePasswordRequest true "Passwords"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "Old password does not match"
// @Router /api/profile/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.UserService.ChangePassword(ctx.Request.Context(), userID, req); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "jpg, png, gif or webp"
// @Success 200 {object} util.Response{data=service.Profile}
// @Failure 400 {object} util.Response
// @Failure 413 {object} util.Response
// @Router /api/profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	header, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}
	profile, err := c.UserService.UploadAvatar(ctx.Request.Context(), userID, header)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// GetStats godoc
// @Summary Recalculate and return the caller's points and level
// @Tags Profile
// @Produce json
// @Success 200 {object} util.Response{data=service.UserStats}
// @Router /api/profile/stats [get]
func (c *UserController) GetStats(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	stats, err := c.StatsService.Recalculate(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Leaderboard godoc
// @Summary Top users by points
// @Tags Profile
// @Produce json
// @Param limit query int false "Entries" default(10)
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *UserController) Leaderboard(ctx *gin.Context) {
	limit := util.ParsePositiveInt(ctx.Query("limit"), 10)
	util.Success(ctx, c.StatsService.Leaderboard(ctx.Request.Context(), limit))
}

// ListUsers godoc
// @Summary List users
// @Tags Admin
// @Produce json
// @Param search query string false "Matches email or name"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]service.Profile}}
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page := util.ParsePositiveInt(ctx.Query("page"), util.DefaultPage)
	pageSize := util.ParsePositiveInt(ctx.Query("pageSize"), util.DefaultPageSize)
	util.Success(ctx, c.UserService.ListUsers(ctx.Request.Context(), ctx.Query("search"), page, pageSize))
}

// GetUser godoc
// @Summary Get a user by UserId, email or document id
// @Tags Admin
// @Produce json
// @Param id path string true "User key"
// @Success 200 {object} util.Response{data=service.Profile}
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	profile, err := c.UserService.GetUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User key"
// @Param body body service.UpdateRoleRequest true "Role"
// @Success 200 {object} util.Response{data=service.Profile}
// @Router /api/admin/users/{id}/role [put]
func (c *UserController) UpdateRole(ctx *gin.Context) {
	var req service.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	profile, err := c.UserService.UpdateRole(ctx.Request.Context(), ctx.Param("id"), req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// DeleteUser godoc
// @Summary Delete a user with their progress and avatar
// @Tags Admin
// @Produce json
// @Param id path string true "User key"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if claims := util.GetUserFromContext(ctx); claims != nil && claims.UserID == ctx.Param("id") {
		util.BadRequest(ctx, "cannot delete your own account")
		return
	}
	if err := c.UserService.DeleteUser(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
