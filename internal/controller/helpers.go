package controller

import (
	"context"
	"english_learning_backend/internal/util"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathKey reads a positive integer natural key from the named path parameter,
// answering 400 itself when it is malformed.
func pathKey(ctx *gin.Context, name string) (int, bool) {
	key, err := strconv.Atoi(ctx.Param(name))
	if err != nil || key <= 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return key, true
}

func currentUserID(ctx *gin.Context) (string, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return "", false
	}
	return claims.UserID, true
}

// respondError maps service errors onto HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotFound), errors.Is(err, util.ErrUserNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrEmailRegistered):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidInput), errors.Is(err, util.ErrUnsupportedFile):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrFileTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// Shared bodies of the content CRUD handlers.

func getContent[T any](ctx *gin.Context, get func(context.Context, int) (*T, error)) {
	key, ok := pathKey(ctx, "id")
	if !ok {
		return
	}
	item, err := get(ctx.Request.Context(), key)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

func createContent[T any](ctx *gin.Context, create func(context.Context, *T) (*T, error)) {
	var item T
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	created, err := create(ctx.Request.Context(), &item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, created)
}

func updateContent[T any](ctx *gin.Context, update func(context.Context, int, *T) (*T, error)) {
	key, ok := pathKey(ctx, "id")
	if !ok {
		return
	}
	var item T
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	updated, err := update(ctx.Request.Context(), key, &item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}

func deleteContent(ctx *gin.Context, del func(context.Context, int) error) {
	key, ok := pathKey(ctx, "id")
	if !ok {
		return
	}
	if err := del(ctx.Request.Context(), key); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
