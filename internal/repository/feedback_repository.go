package repository

import (
	"codefix_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(fb *model.LessonFeedback) error {
	return r.DB.Create(fb).Error
}

// FindWithPagination lists lesson feedback newest first.
func (r *FeedbackRepository) FindWithPagination(offset, limit int) ([]model.LessonFeedback, int64, error) {
	var feedback []model.LessonFeedback
	var total int64

	r.DB.Model(&model.LessonFeedback{}).Count(&total)

	err := r.DB.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&feedback).Error
	if err != nil {
		return nil, 0, err
	}

	return feedback, total, nil
}
