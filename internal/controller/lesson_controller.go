package controller

import (
	"codefix_backend/internal/model"
	"codefix_backend/internal/service"
	"codefix_backend/internal/util"
	"codefix_backend/pkg/monitoring"
	"errors"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	VoteService  *service.VoteService
	AdminService *service.AdminService
}

func NewLessonController(voteService *service.VoteService, adminService *service.AdminService) *LessonController {
	return &LessonController{
		VoteService:  voteService,
		AdminService: adminService,
	}
}

// GetRating godoc
// @Summary Lesson rating
// @Description Aggregate score plus the caller's own vote when signed in
// @Tags lessons
// @Produce json
// @Param id path string true "lesson id"
// @Success 200 {object} util.Response{data=service.RatingView}
// @Router /api/lessons/{id}/rating [get]
func (c *LessonController) GetRating(ctx *gin.Context) {
	userID := uint(0)
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	view, err := c.VoteService.GetRating(ctx.Request.Context(), ctx.Param("id"), userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// Vote godoc
// @Summary Cast, toggle or switch a vote on a lesson
// @Description Clicking the same direction again removes the vote; the opposite direction switches it
// @Tags lessons
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "lesson id"
// @Param body body VoteRequest true "vote direction"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/lessons/{id}/vote [post]
func (c *LessonController) Vote(ctx *gin.Context) {
	var req VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dir := model.VoteDirection(req.Direction)
	effect, err := c.VoteService.CastVote(ctx.Request.Context(), ctx.Param("id"), claims.UserID, dir)
	if err != nil {
		monitoring.VoteCounter.WithLabelValues(req.Direction, "failed").Inc()
		if errors.Is(err, util.ErrInvalidVoteDirection) {
			util.BadRequest(ctx, err.Error())
			return
		}
		// Callers revert optimistic state on any failure; no partial
		// effect was committed.
		util.Success(ctx, gin.H{"success": false})
		return
	}

	monitoring.VoteCounter.WithLabelValues(req.Direction, "committed").Inc()
	util.Success(ctx, gin.H{
		"success":  true,
		"userVote": effect.Next,
		"delta":    effect.Score,
	})
}

type FeedbackRequest struct {
	Feedback  string `json:"feedback" binding:"required"`
	UserEmail string `json:"userEmail" binding:"omitempty,email"`
}

// SubmitFeedback godoc
// @Summary Leave free-text feedback on a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "lesson id"
// @Param body body FeedbackRequest true "feedback"
// @Success 201 {object} util.Response
// @Router /api/lessons/{id}/feedback [post]
func (c *LessonController) SubmitFeedback(ctx *gin.Context) {
	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fb := &model.LessonFeedback{
		LessonID:  ctx.Param("id"),
		Feedback:  req.Feedback,
		UserEmail: req.UserEmail,
	}
	if err := c.AdminService.SaveLessonFeedback(fb); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": fb.ID})
}
