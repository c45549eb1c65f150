package services

import (
	"fmt"

	"github.com/Khattouaymen/pressing-sub000/internal/models"

	"gorm.io/gorm"
)

// Display-id allocation: count the rows carrying the fixed prefix and append
// count+1. Historically this ran outside any transaction and two concurrent
// inserts could compute the same id; callers now pass the transaction the
// insert itself runs in, so the allocation is serialized with the write.

func NextClientID(tx *gorm.DB) (string, error) {
	return nextID(tx, &models.Client{}, models.ClientIDPrefix)
}

func NextOrderID(tx *gorm.DB) (string, error) {
	return nextID(tx, &models.Order{}, models.OrderIDPrefix)
}

func nextID(tx *gorm.DB, model any, prefix string) (string, error) {
	var count int64
	if err := tx.Model(model).Where("id LIKE ?", prefix+"%").Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", prefix, count+1), nil
}
