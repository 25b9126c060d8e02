package repository

import (
	"codefix_backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

// CreateIfNew registers the user and increments the global student
// counter as one atomic unit. A repeat registration for the same email
// is a no-op that leaves the counter untouched; the boolean reports
// whether a row was actually created. Reads run before any write so
// the existence check and the counter bump cannot interleave with a
// concurrent registration of the same identity.
func (r *UserRepository) CreateIfNew(user *model.User) (bool, error) {
	created := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ?", user.Email).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := EnsureStatsLocked(tx); err != nil {
			return err
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}
		created = true

		return tx.Model(&model.GlobalStats{}).
			Where("id = ?", model.GlobalStatsID).
			UpdateColumn("total_students", gorm.Expr("total_students + 1")).Error
	})
	return created, err
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("last_login", time.Now()).Error
}
