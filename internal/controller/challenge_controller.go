package controller

import (
	"codefix_backend/internal/service"
	"codefix_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

// ListChallenges godoc
// @Summary List the challenge catalog
// @Tags challenges
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/challenges [get]
func (c *ChallengeController) ListChallenges(ctx *gin.Context) {
	util.Success(ctx, c.ChallengeService.List())
}

// GetChallenge godoc
// @Summary Get one challenge
// @Tags challenges
// @Produce json
// @Param id path string true "challenge id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/challenges/{id} [get]
func (c *ChallengeController) GetChallenge(ctx *gin.Context) {
	spec, err := c.ChallengeService.Get(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, spec)
}

type SubmitChallengeRequest struct {
	Code string `json:"code" binding:"required"`
}

// SubmitChallenge godoc
// @Summary Submit challenge code for validation
// @Description Runs the structural checks; a pass from a signed-in user records the completion
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "challenge id"
// @Param body body SubmitChallengeRequest true "submitted code"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/challenges/{id}/submit [post]
func (c *ChallengeController) SubmitChallenge(ctx *gin.Context) {
	var req SubmitChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := uint(0)
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	result, err := c.ChallengeService.Submit(ctx.Param("id"), req.Code, userID)
	if err != nil {
		if errors.Is(err, util.ErrChallengeNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
