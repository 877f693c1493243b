package controller

import (
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	Service    *service.TopicService
	Vocabulary *service.VocabularyService
}

func NewTopicController(s *service.TopicService, vocabulary *service.VocabularyService) *TopicController {
	return &TopicController{Service: s, Vocabulary: vocabulary}
}

// List godoc
// @Summary List topics
// @Tags Topics
// @Produce json
// @Param level query string false "CEFR level"
// @Success 200 {object} util.Response{data=[]model.Topic}
// @Router /api/topics [get]
func (c *TopicController) List(ctx *gin.Context) {
	if level := ctx.Query("level"); level != "" {
		util.Success(ctx, c.Service.GetByLevel(ctx.Request.Context(), level))
		return
	}
	util.Success(ctx, c.Service.List(ctx.Request.Context()))
}

// Get godoc
// @Summary Get a topic with its vocabulary and exercises
// @Tags Topics
// @Produce json
// @Param id path int true "ID_CD"
// @Success 200 {object} util.Response{data=service.TopicDetail}
// @Failure 404 {object} util.Response
// @Router /api/topics/{id} [get]
func (c *TopicController) Get(ctx *gin.Context) {
	getContent(ctx, c.Service.Detail)
}

// Vocabulary godoc
// @Summary List the vocabulary of a topic
// @Tags Topics
// @Produce json
// @Param id path int true "ID_CD"
// @Success 200 {object} util.Response{data=[]model.Vocabulary}
// @Router /api/topics/{id}/vocabulary [get]
func (c *TopicController) VocabularyOf(ctx *gin.Context) {
	key, ok := pathKey(ctx, "id")
	if !ok {
		return
	}
	util.Success(ctx, c.Vocabulary.GetByTopic(ctx.Request.Context(), key))
}

// Create godoc
// @Summary Create a topic
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body model.Topic true "Topic"
// @Success 201 {object} util.Response{data=model.Topic}
// @Router /api/admin/topics [post]
func (c *TopicController) Create(ctx *gin.Context) {
	createContent(ctx, c.Service.Create)
}

// Update godoc
// @Summary Replace a topic
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "ID_CD"
// @Param body body model.Topic true "Topic"
// @Success 200 {object} util.Response{data=model.Topic}
// @Router /api/admin/topics/{id} [put]
func (c *TopicController) Update(ctx *gin.Context) {
	updateContent(ctx, c.Service.Update)
}

// Delete godoc
// @Summary Delete a topic
// @Tags Admin
// @Produce json
// @Param id path int true "ID_CD"
// @Success 200 {object} util.Response
// @Router /api/admin/topics/{id} [delete]
func (c *TopicController) Delete(ctx *gin.Context) {
	deleteContent(ctx, c.Service.Delete)
}
