package model

import "time"

// LessonRating is the denormalized per-lesson vote aggregate. The row
// is created lazily with zero values on the first vote and never
// deleted. Invariant: Score == Likes - Dislikes.
type LessonRating struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LessonID  string    `gorm:"size:64;not null;uniqueIndex" json:"lessonId"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	Dislikes  int       `gorm:"not null;default:0" json:"dislikes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (LessonRating) TableName() string {
	return "lesson_ratings"
}
