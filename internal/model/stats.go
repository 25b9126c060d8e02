package model

import "time"

// GlobalStatsID is the primary key of the single global_stats row.
const GlobalStatsID uint = 1

// GlobalStats is the site-wide singleton aggregate. TotalScore equals
// the sum of all LessonRating.Score values; TotalStudents counts
// distinct registered users. Both are only ever mutated inside the
// same transaction that mutates their source of truth.
type GlobalStats struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	TotalScore    int       `gorm:"not null;default:0" json:"totalScore"`
	TotalStudents int       `gorm:"not null;default:0" json:"totalStudents"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (GlobalStats) TableName() string {
	return "global_stats"
}
