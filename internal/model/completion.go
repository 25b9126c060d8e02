package model

import "time"

// LessonCompletion marks one lesson as completed by one user. Rows are
// deleted physically so a lesson can be re-completed after a reset.
type LessonCompletion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_completion_user_lesson" json:"userId"`
	LessonID  string    `gorm:"size:64;not null;uniqueIndex:idx_completion_user_lesson" json:"lessonId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LessonCompletion) TableName() string {
	return "lesson_completions"
}
