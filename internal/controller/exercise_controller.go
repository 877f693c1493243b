package controller

import (
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Service *service.ExerciseService
}

func NewExerciseController(s *service.ExerciseService) *ExerciseController {
	return &ExerciseController{Service: s}
}

// List godoc
// @Summary List exercises
// @Description Answers are not included. At most one filter applies: topicId, then category, then level.
// @Tags Exercises
// @Produce json
// @Param topicId query int false "Topic id"
// @Param category query string false "Category"
// @Param level query string false "CEFR level"
// @Success 200 {object} util.Response{data=[]model.Exercise}
// @Router /api/exercises [get]
func (c *ExerciseController) List(ctx *gin.Context) {
	filter := service.ExerciseFilter{
		TopicID:  util.ParsePositiveInt(ctx.Query("topicId"), 0),
		Category: ctx.Query("category"),
		Level:    ctx.Query("level"),
	}
	util.Success(ctx, c.Service.ListPublic(ctx.Request.Context(), filter))
}

// Get godoc
// @Summary Get an exercise without its answer
// @Tags Exercises
// @Produce json
// @Param id path int true "ID_BT"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Failure 404 {object} util.Response
// @Router /api/exercises/{id} [get]
func (c *ExerciseController) Get(ctx *gin.Context) {
	getContent(ctx, c.Service.GetPublic)
}

// Submit godoc
// @Summary Answer an exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Param id path int true "ID_BT"
// @Param body body service.SubmitAnswerRequest true "Answer"
// @Success 200 {object} util.Response{data=service.ExerciseResult}
// @Failure 404 {object} util.Response
// @Router /api/exercises/{id}/submit [post]
func (c *ExerciseController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	key, ok := pathKey(ctx, "id")
	if !ok {
		return
	}

	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Submit(ctx.Request.Context(), userID, key, req.Answer)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// AdminGet godoc
// @Summary Get an exercise including its answer
// @Tags Admin
// @Produce json
// @Param id path int true "ID_BT"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Router /api/admin/exercises/{id} [get]
func (c *ExerciseController) AdminGet(ctx *gin.Context) {
	getContent(ctx, c.Service.Get)
}

// Create godoc
// @Summary Create an exercise
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body model.Exercise true "Exercise"
// @Success 201 {object} util.Response{data=model.Exercise}
// @Router /api/admin/exercises [post]
func (c *ExerciseController) Create(ctx *gin.Context) {
	createContent(ctx, c.Service.Create)
}

// Update godoc
// @Summary Replace an exercise
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "ID_BT"
// @Param body body model.Exercise true "Exercise"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Router /api/admin/exercises/{id} [put]
func (c *ExerciseController) Update(ctx *gin.Context) {
	updateContent(ctx, c.Service.Update)
}

// Delete godoc
// @Summary Delete an exercise
// @Tags Admin
// @Produce json
// @Param id path int true "ID_BT"
// @Success 200 {object} util.Response
// @Router /api/admin/exercises/{id} [delete]
func (c *ExerciseController) Delete(ctx *gin.Context) {
	deleteContent(ctx, c.Service.Delete)
}
