package controller

import (
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Service *service.FavoriteService
}

func NewFavoriteController(s *service.FavoriteService) *FavoriteController {
	return &FavoriteController{Service: s}
}

// Toggle returns the handler flipping the caller's favorite on one content kind.
// @Summary Toggle a favorite
// @Tags Favorites
// @Produce json
// @Param id path int true "Natural key of the item"
// @Success 200 {object} util.Response{data=service.FavoriteResult}
// @Failure 404 {object} util.Response
// @Router /api/vocabulary/{id}/favorite [post]
// @Router /api/grammar/{id}/favorite [post]
// @Router /api/topics/{id}/favorite [post]
func (c *FavoriteController) Toggle(kind string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := currentUserID(ctx)
		if !ok {
			return
		}
		key, ok := pathKey(ctx, "id")
		if !ok {
			return
		}

		result, err := c.Service.Toggle(ctx.Request.Context(), kind, key, userID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, result)
	}
}

// List godoc
// @Summary List the caller's favorites
// @Tags Favorites
// @Produce json
// @Success 200 {object} util.Response{data=service.FavoriteList}
// @Router /api/favorites [get]
func (c *FavoriteController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.Service.List(ctx.Request.Context(), userID))
}
