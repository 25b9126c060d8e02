package repository

import (
	"codefix_backend/internal/model"

	"gorm.io/gorm"
)

type ContactRepository struct {
	DB *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(msg *model.ContactMessage) error {
	return r.DB.Create(msg).Error
}

// FindWithPagination lists contact messages newest first for the admin
// review screen.
func (r *ContactRepository) FindWithPagination(offset, limit int) ([]model.ContactMessage, int64, error) {
	var messages []model.ContactMessage
	var total int64

	r.DB.Model(&model.ContactMessage{}).Count(&total)

	err := r.DB.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
