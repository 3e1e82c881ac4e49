package repositories

import (
	"context"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

// UserRepository persists registered student accounts. Lookups by email take
// the already-normalized (lowercased) form; normalization is the account
// service's job so the uniqueness invariant has a single definition.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateProfileAndRoadmaps replaces both documents on the user row.
	// Unknown ids are a silent no-op, mirroring the portal's contract.
	UpdateProfileAndRoadmaps(ctx context.Context, id string, profile *models.StudentProfile, roadmaps []models.Roadmap) error

	// UpdateRoadmaps replaces just the roadmaps document. Unknown ids are a
	// silent no-op.
	UpdateRoadmaps(ctx context.Context, id string, roadmaps []models.Roadmap) error
}

// MockTestRepository persists completed mock tests, append-only per user.
type MockTestRepository interface {
	// Append inserts the result for its user. Returns false without error
	// when the user does not exist (the record is simply not persisted).
	Append(ctx context.Context, result *models.MockTestResult) (bool, error)

	// ListByUser returns the user's results, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.MockTestResult, error)
}
