package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/CampusPrep-2025/placement-service/internal/cache"
	"github.com/CampusPrep-2025/placement-service/internal/events"
	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

const (
	logoServiceURL = "https://logo.clearbit.com/"
	driveCacheKey  = "drives:catalog"
)

// seedDrives is the catalog the store starts with on first initialization.
var seedDrives = []models.Drive{
	{CompanyName: "Google", Role: "Software Engineer Intern", Description: "Join our team...", Date: "2024-09-15", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/2/2f/Google_2015_logo.svg", ApplyURL: "#"},
	{CompanyName: "Microsoft", Role: "Data Analyst", Description: "Analyze large datasets...", Date: "2024-09-20", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/4/44/Microsoft_logo.svg", ApplyURL: "#"},
	{CompanyName: "Amazon", Role: "Cloud Support Associate", Description: "Provide technical support...", Date: "2024-09-22", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/a/a9/Amazon_logo.svg", ApplyURL: "#"},
}

// DriveService owns the global drive catalog.
type DriveService interface {
	// Initialize seeds the catalog on first run. Idempotent: an existing
	// catalog is never touched.
	Initialize(ctx context.Context) error

	List(ctx context.Context) ([]models.Drive, error)
	Add(ctx context.Context, req *AddDriveRequest) (*models.Drive, error)

	// Remove deletes the drive; removing an unknown id is a no-op.
	Remove(ctx context.Context, id string) error
}

// AddDriveRequest is an admin's new drive posting. The logo URL is derived,
// not supplied.
type AddDriveRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=255"`
	Role        string `json:"role" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	ApplyURL    string `json:"apply_url" validate:"required"`
}

type driveService struct {
	repo      repositories.Repository
	cache     *cache.CacheHelper
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewDriveService(repo repositories.Repository, cacheHelper *cache.CacheHelper, publisher events.EventPublisher, logger *slog.Logger) DriveService {
	return &driveService{
		repo:      repo,
		cache:     cacheHelper,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *driveService) Initialize(ctx context.Context) error {
	count, err := s.repo.Drive().Count(ctx)
	if err != nil {
		return storeError(err)
	}
	if count > 0 {
		return nil
	}

	// Seed in reverse so the catalog lists them in declaration order
	// (newest-created first).
	for i := len(seedDrives) - 1; i >= 0; i-- {
		drive := seedDrives[i]
		drive.ID = "drive_" + uuid.New().String()
		if err := s.repo.Drive().Create(ctx, &drive); err != nil {
			return storeError(err)
		}
	}

	s.logger.Info("Seeded drive catalog", "count", len(seedDrives))
	return nil
}

func (s *driveService) List(ctx context.Context) ([]models.Drive, error) {
	var cached []models.Drive
	if err := s.cache.Get(ctx, driveCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn("Drive cache read failed", "error", err)
	}

	drives, err := s.repo.Drive().List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	if drives == nil {
		drives = []models.Drive{}
	}

	if err := s.cache.Set(ctx, driveCacheKey, drives, cache.DriveCacheTTL); err != nil {
		s.logger.Warn("Drive cache write failed", "error", err)
	}

	return drives, nil
}

func (s *driveService) Add(ctx context.Context, req *AddDriveRequest) (*models.Drive, error) {
	drive := &models.Drive{
		ID:          "drive_" + uuid.New().String(),
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Description: req.Description,
		Date:        req.Date,
		LogoURL:     DeriveLogoURL(req.CompanyName),
		ApplyURL:    req.ApplyURL,
	}

	if err := s.repo.Drive().Create(ctx, drive); err != nil {
		return nil, storeError(err)
	}

	s.invalidateCatalog(ctx)
	s.publishEvent(ctx, events.NewPlacementEvent(events.EventDrivePosted, events.DriveEvent{
		DriveID:     drive.ID,
		CompanyName: drive.CompanyName,
		Role:        drive.Role,
	}))

	s.logger.Info("Drive posted", "drive_id", drive.ID, "company", drive.CompanyName)
	return drive, nil
}

func (s *driveService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Drive().Delete(ctx, id); err != nil {
		return storeError(err)
	}

	s.invalidateCatalog(ctx)
	s.publishEvent(ctx, events.NewPlacementEvent(events.EventDriveRemoved, events.DriveEvent{
		DriveID: id,
	}))

	return nil
}

func (s *driveService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Delete(ctx, driveCacheKey); err != nil {
		s.logger.Warn("Drive cache invalidation failed", "error", err)
	}
}

func (s *driveService) publishEvent(ctx context.Context, event *events.PlacementEvent) {
	if err := s.publisher.PublishPlacementEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish placement event", "event_type", event.Type, "error", err)
	}
}

// DeriveLogoURL builds the logo URL from a company name: lowercased, all
// whitespace stripped, resolved against the logo service.
func DeriveLogoURL(companyName string) string {
	domain := strings.Join(strings.Fields(strings.ToLower(companyName)), "")
	return fmt.Sprintf("%s%s.com", logoServiceURL, domain)
}
