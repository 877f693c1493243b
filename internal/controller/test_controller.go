package controller

import (
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	Service *service.TestService
}

func NewTestController(s *service.TestService) *TestController {
	return &TestController{Service: s}
}

// List godoc
// @Summary List tests
// @Tags Tests
// @Produce json
// @Param level query string false "CEFR level"
// @Success 200 {object} util.Response{data=[]model.Test}
// @Router /api/tests [get]
func (c *TestController) List(ctx *gin.Context) {
	util.Success(ctx, c.Service.ListPublic(ctx.Request.Context(), ctx.Query("level")))
}

// Get godoc
// @Summary Get a test without answers
// @Tags Tests
// @Produce json
// @Param id path int true "ID_BKT"
// @Success 200 {object} util.Response{data=model.Test}
// @Failure 404 {object} util.Response
// @Router /api/tests/{id} [get]
func (c *TestController) Get(ctx *gin.Context) {
	getContent(ctx, c.Service.GetPublic)
}

// Submit godoc
// @Summary Submit answers to a test
// @Description Answers are matched to questions by position.
// @Tags Tests
// @Accept json
// @Produce json
// @Param id path int true "ID_BKT"
// @Param body body service.SubmitTestRequest true "Answers"
// @Success 200 {object} util.Response{data=service.TestResult}
// @Failure 404 {object} util.Response
// @Router /api/tests/{id}/submit [post]
func (c *TestController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	key, ok := pathKey(ctx, "id")
	if !ok {
		return
	}

	var req service.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Submit(ctx.Request.Context(), userID, key, req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// AdminGet godoc
// @Summary Get a test including answers
// @Tags Admin
// @Produce json
// @Param id path int true "ID_BKT"
// @Success 200 {object} util.Response{data=model.Test}
// @Router /api/admin/tests/{id} [get]
func (c *TestController) AdminGet(ctx *gin.Context) {
	getContent(ctx, c.Service.Get)
}

// Create godoc
// @Summary Create a test
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body model.Test true "Test"
// @Success 201 {object} util.Response{data=model.Test}
// @Router /api/admin/tests [post]
func (c *TestController) Create(ctx *gin.Context) {
	createContent(ctx, c.Service.Create)
}

// Update godoc
// @Summary Replace a test
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "ID_BKT"
// @Param body body model.Test true "Test"
// @Success 200 {object} util.Response{data=model.Test}
// @Router /api/admin/tests/{id} [put]
func (c *TestController) Update(ctx *gin.Context) {
	updateContent(ctx, c.Service.Update)
}

// Delete godoc
// @Summary Delete a test
// @Tags Admin
// @Produce json
// @Param id path int true "ID_BKT"
// @Success 200 {object} util.Response
// @Router /api/admin/tests/{id} [delete]
func (c *TestController) Delete(ctx *gin.Context) {
	deleteContent(ctx, c.Service.Delete)
}
