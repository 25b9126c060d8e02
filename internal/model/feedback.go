package model

// LessonFeedback is an append-only free-text note a learner leaves on
// a lesson, typically after a downvote.
type LessonFeedback struct {
	UUIDBase
	LessonID  string `gorm:"size:64;not null;index" json:"lessonId"`
	Feedback  string `gorm:"type:text;not null" json:"feedback"`
	UserEmail string `gorm:"size:100;default:'Anonymous'" json:"userEmail"`
}

func (LessonFeedback) TableName() string {
	return "lesson_feedback"
}
