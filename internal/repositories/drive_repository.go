package repositories

import (
	"context"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

// DriveRepository persists the global drive catalog.
type DriveRepository interface {
	Create(ctx context.Context, drive *models.Drive) error

	// List returns the catalog, newest first.
	List(ctx context.Context) ([]models.Drive, error)

	// Delete removes the drive if present; removing an unknown id is a no-op.
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
}
