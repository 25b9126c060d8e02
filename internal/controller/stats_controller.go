package controller

import (
	"codefix_backend/internal/service"
	"codefix_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// GetGlobalStats godoc
// @Summary Site-wide totals for the landing page
// @Tags stats
// @Produce json
// @Success 200 {object} util.Response{data=model.GlobalStats}
// @Router /api/stats [get]
func (c *StatsController) GetGlobalStats(ctx *gin.Context) {
	stats, err := c.StatsService.GetGlobalStats(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
