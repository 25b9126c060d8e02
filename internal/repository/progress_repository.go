package repository

import (
	"codefix_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// ListCompletions returns the ids of every lesson the user has
// completed, oldest first.
func (r *ProgressRepository) ListCompletions(userID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.LessonCompletion{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("lesson_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// MarkComplete records a completion. Re-marking an already completed
// lesson is a no-op, not an error. Progress rows are owned by a single
// user, so the read-then-create here only guards idempotence, not
// cross-writer isolation.
func (r *ProgressRepository) MarkComplete(userID uint, lessonID string) error {
	var existing model.LessonCompletion
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.Create(&model.LessonCompletion{UserID: userID, LessonID: lessonID}).Error
}

// DeleteCompletion removes one completion; absent rows are a no-op.
func (r *ProgressRepository) DeleteCompletion(userID uint, lessonID string) error {
	return r.DB.Delete(&model.LessonCompletion{}, "user_id = ? AND lesson_id = ?", userID, lessonID).Error
}

// ResetAll clears the user's entire completion set.
func (r *ProgressRepository) ResetAll(userID uint) error {
	return r.DB.Delete(&model.LessonCompletion{}, "user_id = ?", userID).Error
}
