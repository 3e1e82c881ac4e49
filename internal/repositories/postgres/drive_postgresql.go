package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

type DrivePostgreSQL struct {
	db *gorm.DB
}

func NewDrivePostgreSQL(db *gorm.DB) repositories.DriveRepository {
	return &DrivePostgreSQL{db: db}
}

func (d *DrivePostgreSQL) Create(ctx context.Context, drive *models.Drive) error {
	if err := d.db.WithContext(ctx).Create(drive).Error; err != nil {
		return fmt.Errorf("failed to create drive: %w", err)
	}
	return nil
}

func (d *DrivePostgreSQL) List(ctx context.Context) ([]models.Drive, error) {
	var drives []models.Drive
	err := d.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&drives).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list drives: %w", err)
	}
	return drives, nil
}

func (d *DrivePostgreSQL) Delete(ctx context.Context, id string) error {
	// Deleting an unknown id affects zero rows and is not an error.
	err := d.db.WithContext(ctx).
		Delete(&models.Drive{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("failed to delete drive: %w", err)
	}
	return nil
}

func (d *DrivePostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&models.Drive{}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count drives: %w", err)
	}
	return count, nil
}
