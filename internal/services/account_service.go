package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CampusPrep-2025/placement-service/internal/events"
	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

// AccountService owns the per-user records: registration, credential checks
// and the profile/roadmap/mock-test sub-documents.
type AccountService interface {
	Register(ctx context.Context, email, secret string) (*models.Identity, error)
	Authenticate(ctx context.Context, email, secret string) (*models.Identity, error)

	// GetDocument returns the full user record, or nil for the synthetic
	// admin identity and for unknown ids.
	GetDocument(ctx context.Context, uid string) (*models.UserDocument, error)

	// SaveProfileAndRoadmaps replaces both sub-documents. Unknown uids are a
	// silent no-op.
	SaveProfileAndRoadmaps(ctx context.Context, uid string, profile *models.StudentProfile, roadmaps []models.Roadmap) error

	// SaveRoadmaps replaces the roadmap sequence. Unknown uids are a silent
	// no-op.
	SaveRoadmaps(ctx context.Context, uid string, roadmaps []models.Roadmap) error

	// AppendMockTestResult assigns the result an id and timestamp and
	// prepends it to the user's history. The generated record is returned
	// even when the uid is unknown and nothing was persisted.
	AppendMockTestResult(ctx context.Context, uid string, req *RecordTestRequest) (*models.MockTestResult, error)
}

// RecordTestRequest captures a completed mock test.
type RecordTestRequest struct {
	Topic          string `json:"topic" validate:"required,max=255"`
	Score          int    `json:"score" validate:"min=0"`
	TotalQuestions int    `json:"total_questions" validate:"required,min=1"`
}

type accountService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewAccountService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger) AccountService {
	return &accountService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// NormalizeEmail lowercases and trims an email. Every email written to or
// looked up in the store goes through this, which is what makes the
// uniqueness invariant case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *accountService) Register(ctx context.Context, email, secret string) (*models.Identity, error) {
	normalized := NormalizeEmail(email)

	exists, err := s.repo.User().ExistsByEmail(ctx, normalized)
	if err != nil {
		return nil, storeError(err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	user := &models.User{
		ID:             "user_" + uuid.New().String(),
		Email:          normalized,
		PasswordSecret: secret,
		Role:           models.RoleStudent,
		Roadmaps:       []byte("[]"),
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		// A concurrent sign-up with the same email loses the race on the
		// unique index; report it as the duplicate it is.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, storeError(err)
	}

	s.logger.Info("Registered user", "uid", user.ID)

	return &models.Identity{UID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func (s *accountService) Authenticate(ctx context.Context, email, secret string) (*models.Identity, error) {
	user, err := s.repo.User().GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeError(err)
	}

	if user.PasswordSecret != secret {
		return nil, ErrInvalidCredentials
	}

	return &models.Identity{UID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func (s *accountService) GetDocument(ctx context.Context, uid string) (*models.UserDocument, error) {
	if uid == models.AdminUID {
		// Admins carry no profile, roadmaps or test history.
		return nil, nil
	}

	user, err := s.repo.User().GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err)
	}

	doc := &models.UserDocument{
		Email:     user.Email,
		Role:      user.Role,
		Roadmaps:  []models.Roadmap{},
		MockTests: user.MockTests,
	}
	if doc.MockTests == nil {
		doc.MockTests = []models.MockTestResult{}
	}

	if len(user.Profile) > 0 && string(user.Profile) != "null" {
		var profile models.StudentProfile
		if err := json.Unmarshal(user.Profile, &profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		doc.Profile = &profile
	}

	if len(user.Roadmaps) > 0 {
		if err := json.Unmarshal(user.Roadmaps, &doc.Roadmaps); err != nil {
			return nil, fmt.Errorf("failed to decode roadmaps: %w", err)
		}
	}

	return doc, nil
}

func (s *accountService) SaveProfileAndRoadmaps(ctx context.Context, uid string, profile *models.StudentProfile, roadmaps []models.Roadmap) error {
	if err := checkRoadmapRoles(roadmaps); err != nil {
		return err
	}
	if err := s.repo.User().UpdateProfileAndRoadmaps(ctx, uid, profile, roadmaps); err != nil {
		return storeError(err)
	}
	return nil
}

func (s *accountService) SaveRoadmaps(ctx context.Context, uid string, roadmaps []models.Roadmap) error {
	if err := checkRoadmapRoles(roadmaps); err != nil {
		return err
	}
	if err := s.repo.User().UpdateRoadmaps(ctx, uid, roadmaps); err != nil {
		return storeError(err)
	}
	return nil
}

func (s *accountService) AppendMockTestResult(ctx context.Context, uid string, req *RecordTestRequest) (*models.MockTestResult, error) {
	result := &models.MockTestResult{
		ID:             "test_" + uuid.New().String(),
		UserID:         uid,
		Topic:          req.Topic,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Date:           time.Now(),
	}

	persisted, err := s.repo.MockTest().Append(ctx, result)
	if err != nil {
		return nil, storeError(err)
	}

	if persisted {
		s.publishEvent(ctx, events.NewPlacementEvent(events.EventMockTestRecorded, events.MockTestEvent{
			UserID:         uid,
			ResultID:       result.ID,
			Topic:          result.Topic,
			Score:          result.Score,
			TotalQuestions: result.TotalQuestions,
		}))
	} else {
		s.logger.Warn("Mock test result not persisted for unknown user", "uid", uid)
	}

	return result, nil
}

func (s *accountService) publishEvent(ctx context.Context, event *events.PlacementEvent) {
	if err := s.publisher.PublishPlacementEvent(ctx, event); err != nil {
		// Event delivery is best-effort; the durable write already happened.
		s.logger.Warn("Failed to publish placement event", "event_type", event.Type, "error", err)
	}
}

// checkRoadmapRoles rejects a roadmap sequence holding two entries for the
// same role, compared case-insensitively.
func checkRoadmapRoles(roadmaps []models.Roadmap) error {
	seen := make(map[string]struct{}, len(roadmaps))
	for _, roadmap := range roadmaps {
		key := strings.ToLower(roadmap.Role)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrRoadmapExists, roadmap.Role)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func storeError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
