package service

import (
	"codefix_backend/internal/repository"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

func (s *ProgressService) ListCompletions(userID uint) ([]string, error) {
	ids, err := s.ProgressRepo.ListCompletions(userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *ProgressService) MarkComplete(userID uint, lessonID string) error {
	return s.ProgressRepo.MarkComplete(userID, lessonID)
}

func (s *ProgressService) DeleteCompletion(userID uint, lessonID string) error {
	return s.ProgressRepo.DeleteCompletion(userID, lessonID)
}

func (s *ProgressService) ResetAll(userID uint) error {
	return s.ProgressRepo.ResetAll(userID)
}
