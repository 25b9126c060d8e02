package repository

import (
	"codefix_backend/internal/model"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository struct {
	DB *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{DB: db}
}

// FindUserVote returns the caller's current vote direction on a
// lesson, or NoVote when no row exists.
func (r *VoteRepository) FindUserVote(userID uint, lessonID string) (model.VoteDirection, error) {
	var vote model.UserVote
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NoVote, nil
	}
	if err != nil {
		return model.NoVote, err
	}
	return vote.Type, nil
}

// FindRating returns the lesson's rating aggregate, zero-valued when
// nobody has voted yet.
func (r *VoteRepository) FindRating(lessonID string) (*model.LessonRating, error) {
	var rating model.LessonRating
	err := r.DB.Where("lesson_id = ?", lessonID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.LessonRating{LessonID: lessonID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// CastVote applies one vote action atomically: the voter's current
// state, the lesson aggregate and the global stats row are read and
// locked first, then every resulting write lands in the same
// transaction. Either the whole effect commits or none of it does.
func (r *VoteRepository) CastVote(userID uint, lessonID string, dir model.VoteDirection) (model.VoteEffect, error) {
	var effect model.VoteEffect
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		// Reads first: previous vote, rating row, stats row.
		prev := model.NoVote
		var vote model.UserVote
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND lesson_id = ?", userID, lessonID).
			First(&vote).Error
		switch {
		case err == nil:
			prev = vote.Type
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first interaction with this lesson
		default:
			return err
		}

		var rating model.LessonRating
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("lesson_id = ?", lessonID).
			First(&rating).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rating = model.LessonRating{LessonID: lessonID}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := EnsureStatsLocked(tx); err != nil {
			return err
		}

		effect = model.Transition(prev, dir)

		// Writes: vote row, then both aggregates.
		switch {
		case effect.Next == model.NoVote:
			if err := tx.Delete(&model.UserVote{}, "user_id = ? AND lesson_id = ?", userID, lessonID).Error; err != nil {
				return err
			}
		case prev == model.NoVote:
			if err := tx.Create(&model.UserVote{UserID: userID, LessonID: lessonID, Type: effect.Next}).Error; err != nil {
				return err
			}
		default:
			if err := tx.Model(&model.UserVote{}).
				Where("user_id = ? AND lesson_id = ?", userID, lessonID).
				Update("type", effect.Next).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.LessonRating{}).
			Where("lesson_id = ?", lessonID).
			Updates(map[string]interface{}{
				"score":    gorm.Expr("score + ?", effect.Score),
				"likes":    gorm.Expr("likes + ?", effect.Likes),
				"dislikes": gorm.Expr("dislikes + ?", effect.Dislikes),
			}).Error; err != nil {
			return err
		}

		return tx.Model(&model.GlobalStats{}).
			Where("id = ?", model.GlobalStatsID).
			UpdateColumn("total_score", gorm.Expr("total_score + ?", effect.Score)).Error
	})
	return effect, err
}
