package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

// RepositoryConfig holds dependencies for building the repository layer.
type RepositoryConfig struct {
	DB *gorm.DB
}

type postgresRepository struct {
	db       *gorm.DB
	user     repositories.UserRepository
	drive    repositories.DriveRepository
	mockTest repositories.MockTestRepository
}

// NewRepository creates the aggregate repository over a gorm connection.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &postgresRepository{
		db:       db,
		user:     NewUserPostgreSQL(db),
		drive:    NewDrivePostgreSQL(db),
		mockTest: NewMockTestPostgreSQL(db),
	}
}

func (r *postgresRepository) User() repositories.UserRepository {
	return r.user
}

func (r *postgresRepository) Drive() repositories.DriveRepository {
	return r.drive
}

func (r *postgresRepository) MockTest() repositories.MockTestRepository {
	return r.mockTest
}

func (r *postgresRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *postgresRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// repositoryManager implements repositories.RepositoryManager.
type repositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

// NewRepositoryManager creates a repository manager from config.
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &repositoryManager{config: config}
}

// Initialize migrates the schema and builds the repositories.
func (m *repositoryManager) Initialize() error {
	if m.config.DB == nil {
		return fmt.Errorf("repository manager requires a database connection")
	}

	if err := m.config.DB.AutoMigrate(
		&models.User{},
		&models.Drive{},
		&models.MockTestResult{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	m.repo = NewRepository(m.config.DB)
	return nil
}

func (m *repositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *repositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repository manager not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *repositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close()
}
