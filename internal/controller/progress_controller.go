package controller

import (
	"codefix_backend/internal/service"
	"codefix_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// ListProgress godoc
// @Summary List the caller's completed lessons
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Router /api/progress [get]
func (c *ProgressController) ListProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	ids, err := c.ProgressService.ListCompletions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"completedLessons": ids})
}

type MarkCompleteRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
}

// MarkComplete godoc
// @Summary Mark a lesson completed
// @Description Idempotent; re-marking a completed lesson is a no-op
// @Tags progress
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body MarkCompleteRequest true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) MarkComplete(ctx *gin.Context) {
	var req MarkCompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.ProgressService.MarkComplete(claims.UserID, req.LessonID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// DeleteCompletion godoc
// @Summary Remove one completed lesson
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/progress/{lessonId} [delete]
func (c *ProgressController) DeleteCompletion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.ProgressService.DeleteCompletion(claims.UserID, ctx.Param("lessonId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ResetProgress godoc
// @Summary Clear all of the caller's progress
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress [delete]
func (c *ProgressController) ResetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.ProgressService.ResetAll(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
