package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/CampusPrep-2025/placement-service/internal/cache"
	"github.com/CampusPrep-2025/placement-service/internal/events"
	"github.com/CampusPrep-2025/placement-service/internal/models"
)

// SessionService tracks who is signed in now. The identity is held in the
// durable session slot; the in-memory copy mirrors it. A single subscriber
// can register for transition notifications; registering a new one replaces
// the previous registration (this is a single-slot registration, not a
// broadcast; domain events go through the event publisher instead).
type SessionService interface {
	SignUp(ctx context.Context, email, secret string) (*models.Identity, error)
	SignIn(ctx context.Context, email, secret string) (*models.Identity, error)
	SignInAsAdmin(ctx context.Context) (*models.Identity, error)
	SignOut(ctx context.Context) error

	// Current returns the signed-in identity, or nil when signed out.
	Current() *models.Identity

	// Subscribe registers the single active subscriber and immediately
	// replays the current state to it. Deliveries are serialized in state
	// order. The returned function deregisters the subscriber.
	Subscribe(fn func(*models.Identity)) func()
}

type sessionService struct {
	accounts   AccountService
	store      *cache.SessionStore
	publisher  events.EventPublisher
	adminEmail string
	logger     *slog.Logger

	// transitionMu serializes transitions and the Subscribe replay so
	// deliveries always arrive in state order; a replay racing a sign-in can
	// never land after the newer notification. Always acquired before mu.
	transitionMu sync.Mutex

	mu           sync.Mutex
	current      *models.Identity
	subscriber   func(*models.Identity)
	subscriberID uint64
}

// NewSessionService builds the session layer, restoring the current state
// from the durable session slot.
func NewSessionService(ctx context.Context, accounts AccountService, store *cache.SessionStore, publisher events.EventPublisher, adminEmail string, logger *slog.Logger) (SessionService, error) {
	current, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &sessionService{
		accounts:   accounts,
		store:      store,
		publisher:  publisher,
		adminEmail: adminEmail,
		logger:     logger,
		current:    current,
	}, nil
}

func (s *sessionService) SignUp(ctx context.Context, email, secret string) (*models.Identity, error) {
	identity, err := s.accounts.Register(ctx, email, secret)
	if err != nil {
		// Failed transitions leave the session state untouched.
		return nil, err
	}
	if err := s.establish(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *sessionService) SignIn(ctx context.Context, email, secret string) (*models.Identity, error) {
	identity, err := s.accounts.Authenticate(ctx, email, secret)
	if err != nil {
		return nil, err
	}
	if err := s.establish(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *sessionService) SignInAsAdmin(ctx context.Context) (*models.Identity, error) {
	// The admin identity is synthesized; it never exists in the user store.
	identity := &models.Identity{
		UID:   models.AdminUID,
		Email: s.adminEmail,
		Role:  models.RoleAdmin,
	}
	if err := s.establish(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *sessionService) SignOut(ctx context.Context) error {
	s.transitionMu.Lock()
	defer s.transitionMu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	s.current = nil
	notify := s.subscriber
	s.mu.Unlock()

	if notify != nil {
		notify(nil)
	}

	s.publishTransition(ctx, nil)
	s.logger.Info("Signed out")
	return nil
}

func (s *sessionService) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *sessionService) Subscribe(fn func(*models.Identity)) func() {
	s.transitionMu.Lock()
	s.mu.Lock()
	s.subscriber = fn
	s.subscriberID++
	id := s.subscriberID
	current := s.current
	s.mu.Unlock()

	// Replay the current state so the subscriber never has to wait for the
	// next transition to learn where it stands. Holding transitionMu keeps
	// the replay ordered before any transition that races the registration.
	fn(current)
	s.transitionMu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.subscriberID == id {
			s.subscriber = nil
		}
	}
}

// establish writes the session slot, flips the in-memory state and notifies
// the subscriber, in that order. The notification is delivered strictly
// after the durable write.
func (s *sessionService) establish(ctx context.Context, identity *models.Identity) error {
	s.transitionMu.Lock()
	defer s.transitionMu.Unlock()

	if err := s.store.Save(ctx, identity); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	s.current = identity
	notify := s.subscriber
	s.mu.Unlock()

	if notify != nil {
		notify(identity)
	}

	s.publishTransition(ctx, identity)
	s.logger.Info("Session established", "uid", identity.UID, "role", identity.Role)
	return nil
}

func (s *sessionService) publishTransition(ctx context.Context, identity *models.Identity) {
	payload := events.SessionEvent{SignedIn: identity != nil}
	if identity != nil {
		payload.UID = identity.UID
		payload.Role = string(identity.Role)
	}

	event := events.NewPlacementEvent(events.EventSessionTransition, payload)
	if err := s.publisher.PublishPlacementEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish session transition", "error", err)
	}
}
