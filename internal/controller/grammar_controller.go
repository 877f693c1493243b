package controller

import (
	"english_learning_backend/internal/repository"
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GrammarController struct {
	Service *service.GrammarService
}

func NewGrammarController(s *service.GrammarService) *GrammarController {
	return &GrammarController{Service: s}
}

// List godoc
// @Summary Search grammar lessons
// @Tags Grammar
// @Produce json
// @Param q query string false "Matches title or structure"
// @Param level query string false "CEFR level"
// @Param category query string false "Category"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]model.Grammar}}
// @Router /api/grammar [get]
func (c *GrammarController) List(ctx *gin.Context) {
	filter := repository.GrammarFilter{
		Query:    ctx.Query("q"),
		Level:    ctx.Query("level"),
		Category: ctx.Query("category"),
	}
	page := util.ParsePositiveInt(ctx.Query("page"), util.DefaultPage)
	pageSize := util.ParsePositiveInt(ctx.Query("pageSize"), util.DefaultPageSize)
	util.Success(ctx, c.Service.Search(ctx.Request.Context(), filter, page, pageSize))
}

// Get godoc
// @Summary Get a grammar lesson
// @Tags Grammar
// @Produce json
// @Param id path int true "ID_NP"
// @Success 200 {object} util.Response{data=model.Grammar}
// @Failure 404 {object} util.Response
// @Router /api/grammar/{id} [get]
func (c *GrammarController) Get(ctx *gin.Context) {
	getContent(ctx, c.Service.Get)
}

// Create godoc
// @Summary Create a grammar lesson
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body model.Grammar true "Grammar"
// @Success 201 {object} util.Response{data=model.Grammar}
// @Router /api/admin/grammar [post]
func (c *GrammarController) Create(ctx *gin.Context) {
	createContent(ctx, c.Service.Create)
}

// Update godoc
// @Summary Replace a grammar lesson
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "ID_NP"
// @Param body body model.Grammar true "Grammar"
// @Success 200 {object} util.Response{data=model.Grammar}
// @Router /api/admin/grammar/{id} [put]
func (c *GrammarController) Update(ctx *gin.Context) {
	updateContent(ctx, c.Service.Update)
}

// Delete godoc
// @Summary Delete a grammar lesson
// @Tags Admin
// @Produce json
// @Param id path int true "ID_NP"
// @Success 200 {object} util.Response
// @Router /api/admin/grammar/{id} [delete]
func (c *GrammarController) Delete(ctx *gin.Context) {
	deleteContent(ctx, c.Service.Delete)
}
