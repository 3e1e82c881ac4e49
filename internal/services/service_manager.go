package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CampusPrep-2025/placement-service/internal/cache"
	"github.com/CampusPrep-2025/placement-service/internal/events"
	"github.com/CampusPrep-2025/placement-service/internal/generator"
	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

// ServiceManager wires and exposes the service layer.
type ServiceManager interface {
	Account() AccountService
	Session() SessionService
	Drive() DriveService
	Prep() PrepService
	Export() ExportService

	// Initialize performs first-run work (drive seeding, session restore).
	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// ServiceManagerConfig holds dependencies for building the service layer.
type ServiceManagerConfig struct {
	Repo         repositories.Repository
	CacheHelper  *cache.CacheHelper
	SessionStore *cache.SessionStore
	Publisher    events.EventPublisher
	Generator    generator.ContentGenerator
	AdminEmail   string
	Logger       *slog.Logger
}

type serviceManager struct {
	config ServiceManagerConfig

	account AccountService
	session SessionService
	drive   DriveService
	prep    PrepService
	export  ExportService
}

func NewServiceManager(config ServiceManagerConfig) ServiceManager {
	return &serviceManager{config: config}
}

func (m *serviceManager) Initialize(ctx context.Context) error {
	logger := m.config.Logger

	m.account = NewAccountService(m.config.Repo, m.config.Publisher, logger)
	m.drive = NewDriveService(m.config.Repo, m.config.CacheHelper, m.config.Publisher, logger)
	m.prep = NewPrepService(m.account, m.config.Generator, m.config.Publisher, logger)
	m.export = NewExportService(m.config.Repo, logger)

	session, err := NewSessionService(ctx, m.account, m.config.SessionStore, m.config.Publisher, m.config.AdminEmail, logger)
	if err != nil {
		return fmt.Errorf("failed to restore session state: %w", err)
	}
	m.session = session

	if err := m.drive.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize drive catalog: %w", err)
	}

	return nil
}

func (m *serviceManager) Account() AccountService { return m.account }
func (m *serviceManager) Session() SessionService { return m.session }
func (m *serviceManager) Drive() DriveService     { return m.drive }
func (m *serviceManager) Prep() PrepService       { return m.prep }
func (m *serviceManager) Export() ExportService   { return m.export }

func (m *serviceManager) Shutdown(ctx context.Context) error {
	return m.config.Publisher.Close()
}
