package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

type UserPostgreSQL struct {
	db *gorm.DB
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &UserPostgreSQL{db: db}
}

func (u *UserPostgreSQL) Create(ctx context.Context, user *models.User) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (u *UserPostgreSQL) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).
		Preload("MockTests", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (u *UserPostgreSQL) UpdateProfileAndRoadmaps(ctx context.Context, id string, profile *models.StudentProfile, roadmaps []models.Roadmap) error {
	profileJSON, err := marshalDocument(profile)
	if err != nil {
		return err
	}
	roadmapsJSON, err := marshalDocument(roadmaps)
	if err != nil {
		return err
	}

	// Unknown ids affect zero rows, which is the intended no-op.
	err = u.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"profile":  profileJSON,
			"roadmaps": roadmapsJSON,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update profile and roadmaps: %w", err)
	}
	return nil
}

func (u *UserPostgreSQL) UpdateRoadmaps(ctx context.Context, id string, roadmaps []models.Roadmap) error {
	roadmapsJSON, err := marshalDocument(roadmaps)
	if err != nil {
		return err
	}

	err = u.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("roadmaps", roadmapsJSON).Error
	if err != nil {
		return fmt.Errorf("failed to update roadmaps: %w", err)
	}
	return nil
}

func marshalDocument(v interface{}) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return datatypes.JSON(data), nil
}
