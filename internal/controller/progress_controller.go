package controller

import (
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress   *service.ProgressService
	Vocabulary *service.VocabularyService
	Grammar    *service.GrammarService
}

func NewProgressController(progress *service.ProgressService, vocabulary *service.VocabularyService, grammar *service.GrammarService) *ProgressController {
	return &ProgressController{Progress: progress, Vocabulary: vocabulary, Grammar: grammar}
}

// Get godoc
// @Summary Get the caller's progress
// @Description Creates an empty record on first access
// @Tags Progress
// @Produce json
// @Success 200 {object} util.Response{data=model.Progress}
// @Router /api/progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	p := c.Progress.GetProgress(ctx.Request.Context(), userID)
	if p == nil {
		util.InternalServerError(ctx)
		return
	}
	util.Success(ctx, p)
}

// RecordActivity godoc
// @Summary Record a completed activity
// @Tags Progress
// @Accept json
// @Produce json
// @Param body body service.ActivityRequest true "Activity"
// @Success 200 {object} util.Response{data=model.Progress}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/progress/activity [post]
func (c *ProgressController) RecordActivity(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, ok := c.Progress.RecordActivity(ctx.Request.Context(), userID, req)
	if !ok {
		util.InternalServerError(ctx)
		return
	}
	util.Success(ctx, p)
}

// MarkLearned godoc
// @Summary Mark a vocabulary item or grammar lesson as learned
// @Tags Progress
// @Produce json
// @Param kind path string true "vocabulary or grammar"
// @Param id path int true "Natural key"
// @Success 200 {object} util.Response{data=service.UserStats}
// @Failure 404 {object} util.Response
// @Router /api/learned/{kind}/{id} [post]
func (c *ProgressController) MarkLearned(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	key, ok := pathKey(ctx, "id")
	if !ok {
		return
	}

	var (
		stats *service.UserStats
		err   error
	)
	switch ctx.Param("kind") {
	case service.FavoriteVocabulary:
		stats, err = c.Vocabulary.MarkLearned(ctx.Request.Context(), userID, key)
	case service.FavoriteGrammar:
		stats, err = c.Grammar.MarkLearned(ctx.Request.Context(), userID, key)
	default:
		util.BadRequest(ctx, "kind must be vocabulary or grammar")
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Reset godoc
// @Summary Delete a user's progress record
// @Tags Admin
// @Produce json
// @Param userId path string true "UserId"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/progress/{userId} [delete]
func (c *ProgressController) Reset(ctx *gin.Context) {
	if !c.Progress.ResetProgress(ctx.Request.Context(), ctx.Param("userId")) {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
