package controller

import (
	"codefix_backend/internal/service"
	"codefix_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
	StatsService *service.StatsService
}

func NewAdminController(adminService *service.AdminService, statsService *service.StatsService) *AdminController {
	return &AdminController{
		AdminService: adminService,
		StatsService: statsService,
	}
}

func pagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// ListMessages godoc
// @Summary List contact messages, newest first
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/messages [get]
func (c *AdminController) ListMessages(ctx *gin.Context) {
	page, limit := pagination(ctx)
	messages, total, err := c.AdminService.ListContactMessages(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: messages, Total: total, Page: page, Limit: limit})
}

// ListFeedback godoc
// @Summary List lesson feedback, newest first
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/feedback [get]
func (c *AdminController) ListFeedback(ctx *gin.Context) {
	page, limit := pagination(ctx)
	feedback, total, err := c.AdminService.ListLessonFeedback(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: feedback, Total: total, Page: page, Limit: limit})
}

// CheckConsistency godoc
// @Summary Compare the global score against the per-lesson sum
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response{data=service.ConsistencyReport}
// @Router /api/admin/stats/consistency [get]
func (c *AdminController) CheckConsistency(ctx *gin.Context) {
	report, err := c.StatsService.CheckConsistency()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
