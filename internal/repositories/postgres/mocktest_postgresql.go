package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

type MockTestPostgreSQL struct {
	db *gorm.DB
}

func NewMockTestPostgreSQL(db *gorm.DB) repositories.MockTestRepository {
	return &MockTestPostgreSQL{db: db}
}

func (m *MockTestPostgreSQL) Append(ctx context.Context, result *models.MockTestResult) (bool, error) {
	persisted := false
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", result.UserID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if count == 0 {
			// Unknown user: the result is returned to the caller but
			// nothing is persisted.
			return nil
		}

		if err := tx.Create(result).Error; err != nil {
			return fmt.Errorf("failed to append mock test result: %w", err)
		}
		persisted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return persisted, nil
}

func (m *MockTestPostgreSQL) ListByUser(ctx context.Context, userID string) ([]models.MockTestResult, error) {
	var results []models.MockTestResult
	err := m.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mock test results: %w", err)
	}
	return results, nil
}
