package controller

import (
	"codefix_backend/internal/model"
	"codefix_backend/internal/service"
	"codefix_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	AdminService *service.AdminService
}

func NewContactController(adminService *service.AdminService) *ContactController {
	return &ContactController{AdminService: adminService}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact godoc
// @Summary Submit a contact-form message
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "message"
// @Success 201 {object} util.Response
// @Router /api/contact [post]
func (c *ContactController) SubmitContact(ctx *gin.Context) {
	var req ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := c.AdminService.SaveContactMessage(msg); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": msg.ID})
}
