package repository

import (
	"codefix_backend/internal/model"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// Get returns the singleton stats row, or a zero-valued record when it
// has not been created yet.
func (r *StatsRepository) Get() (*model.GlobalStats, error) {
	var stats model.GlobalStats
	err := r.DB.First(&stats, "id = ?", model.GlobalStatsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.GlobalStats{ID: model.GlobalStatsID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// SumLessonScores returns the sum of every lesson rating score. At any
// quiescent point it must equal GlobalStats.TotalScore.
func (r *StatsRepository) SumLessonScores() (int64, error) {
	var sum int64
	err := r.DB.Model(&model.LessonRating{}).
		Select("COALESCE(SUM(score), 0)").
		Scan(&sum).Error
	return sum, err
}

// EnsureStatsLocked locks the singleton stats row inside tx, creating
// it zero-valued first if it does not exist. Callers must invoke this
// before issuing any write in the same transaction so the read-lock
// ordering holds.
func EnsureStatsLocked(tx *gorm.DB) error {
	var stats model.GlobalStats
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stats, "id = ?", model.GlobalStatsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&model.GlobalStats{ID: model.GlobalStatsID}).Error
	}
	return err
}
