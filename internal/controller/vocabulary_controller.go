package controller

import (
	"english_learning_backend/internal/repository"
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const maxImportBytes = 10 << 20

type VocabularyController struct {
	Service       *service.VocabularyService
	ImportService *service.VocabularyImportService
}

func NewVocabularyController(s *service.VocabularyService, importService *service.VocabularyImportService) *VocabularyController {
	return &VocabularyController{Service: s, ImportService: importService}
}

// List godoc
// @Summary Search vocabulary
// @Tags Vocabulary
// @Produce json
// @Param q query string false "Matches word or meaning"
// @Param topicId query int false "Topic id"
// @Param level query string false "CEFR level"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]model.Vocabulary}}
// @Router /api/vocabulary [get]
func (c *VocabularyController) List(ctx *gin.Context) {
	filter := repository.VocabularyFilter{
		Query:   ctx.Query("q"),
		TopicID: util.ParsePositiveInt(ctx.Query("topicId"), 0),
		Level:   ctx.Query("level"),
	}
	page := util.ParsePositiveInt(ctx.Query("page"), util.DefaultPage)
	pageSize := util.ParsePositiveInt(ctx.Query("pageSize"), util.DefaultPageSize)
	util.Success(ctx, c.Service.Search(ctx.Request.Context(), filter, page, pageSize))
}

// Get godoc
// @Summary Get a vocabulary item
// @Tags Vocabulary
// @Produce json
// @Param id path int true "ID_TV"
// @Success 200 {object} util.Response{data=model.Vocabulary}
// @Failure 404 {object} util.Response
// @Router /api/vocabulary/{id} [get]
func (c *VocabularyController) Get(ctx *gin.Context) {
	getContent(ctx, c.Service.Get)
}

// Create godoc
// @Summary Create a vocabulary item
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body model.Vocabulary true "Vocabulary"
// @Success 201 {object} util.Response{data=model.Vocabulary}
// @Router /api/admin/vocabulary [post]
func (c *VocabularyController) Create(ctx *gin.Context) {
	createContent(ctx, c.Service.Create)
}

// Update godoc
// @Summary Replace a vocabulary item
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "ID_TV"
// @Param body body model.Vocabulary true "Vocabulary"
// @Success 200 {object} util.Response{data=model.Vocabulary}
// @Failure 404 {object} util.Response
// @Router /api/admin/vocabulary/{id} [put]
func (c *VocabularyController) Update(ctx *gin.Context) {
	updateContent(ctx, c.Service.Update)
}

// Delete godoc
// @Summary Delete a vocabulary item
// @Tags Admin
// @Produce json
// @Param id path int true "ID_TV"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/vocabulary/{id} [delete]
func (c *VocabularyController) Delete(ctx *gin.Context) {
	deleteContent(ctx, c.Service.Delete)
}

// Import godoc
// @Summary Import vocabulary from a spreadsheet
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true ".xlsx or .csv with a header row"
// @Success 200 {object} util.Response{data=service.ImportResult}
// @Failure 400 {object} util.Response
// @Router /api/admin/vocabulary/import [post]
func (c *VocabularyController) Import(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if header.Size > maxImportBytes {
		respondError(ctx, util.ErrFileTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	result, err := c.ImportService.Import(ctx.Request.Context(), file, header.Filename)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Export godoc
// @Summary Export all vocabulary as .xlsx
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /api/admin/vocabulary/export [get]
func (c *VocabularyController) Export(ctx *gin.Context) {
	f, err := c.ImportService.Export(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("vocabulary-%s.xlsx", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		util.LogInternalError(ctx, err)
	}
}
