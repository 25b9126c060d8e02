package service

import (
	"codefix_backend/internal/model"
	"codefix_backend/internal/repository"
)

type AdminService struct {
	ContactRepo  *repository.ContactRepository
	FeedbackRepo *repository.FeedbackRepository
}

func NewAdminService(contactRepo *repository.ContactRepository, feedbackRepo *repository.FeedbackRepository) *AdminService {
	return &AdminService{
		ContactRepo:  contactRepo,
		FeedbackRepo: feedbackRepo,
	}
}

func (s *AdminService) SaveContactMessage(msg *model.ContactMessage) error {
	return s.ContactRepo.Create(msg)
}

func (s *AdminService) SaveLessonFeedback(fb *model.LessonFeedback) error {
	if fb.UserEmail == "" {
		fb.UserEmail = "Anonymous"
	}
	return s.FeedbackRepo.Create(fb)
}

func (s *AdminService) ListContactMessages(page, limit int) ([]model.ContactMessage, int64, error) {
	return s.ContactRepo.FindWithPagination((page-1)*limit, limit)
}

func (s *AdminService) ListLessonFeedback(page, limit int) ([]model.LessonFeedback, int64, error) {
	return s.FeedbackRepo.FindWithPagination((page-1)*limit, limit)
}
